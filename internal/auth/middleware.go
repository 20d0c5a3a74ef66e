package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Middleware returns a huma operation middleware that rejects requests
// without a valid admin bearer token before the handler runs.
func (a *Authenticator) Middleware(api huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if err := a.Authorize(ctx.Context(), ctx.Header("Authorization")); err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(ctx)
	}
}
