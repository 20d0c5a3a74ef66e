package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/reach-summit/summit-api/internal/logger"
)

type Options struct {
	AllowedOrigins []string
}

// RegisterRoutes mounts middleware and every API operation on r and returns
// the huma API so callers can inspect the generated OpenAPI document.
func RegisterRoutes(r *chi.Mux, log *zap.Logger, opts Options,
	registrationHandler *RegistrationHandler, adminHandler *AdminHandler, healthHandler *HealthHandler,
) huma.API {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	r.Use(middleware.SetHeader("X-Frame-Options", "DENY"))
	r.Use(middleware.SetHeader("Referrer-Policy", "no-referrer"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	config := huma.DefaultConfig("Summit Registration API", "1.0.0")
	// No $schema links in response bodies.
	config.CreateHooks = nil
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, config)

	huma.Get(api, "/health", healthHandler.HandleHealth, func(o *huma.Operation) {
		o.Tags = []string{"health"}
		o.Responses = map[string]*huma.Response{
			"503": {Description: "Database unreachable"},
		}
	})

	huma.Post(api, "/api/register/individual", registrationHandler.HandleIndividual, func(o *huma.Operation) {
		o.Summary = "Submit an individual registration"
		o.Tags = []string{"registration"}
	})
	huma.Post(api, "/api/register/group", registrationHandler.HandleGroup, func(o *huma.Operation) {
		o.Summary = "Submit a group registration"
		o.Tags = []string{"registration"}
	})

	huma.Post(api, "/api/admin/login", adminHandler.HandleLogin, func(o *huma.Operation) {
		o.Summary = "Exchange the admin password for a bearer token"
		o.Description = `Accepts {"password": "..."}. Any body that does not carry the admin password gets 401.`
		o.Tags = []string{"admin"}
	})

	requireAdmin := adminHandler.auth.Middleware(api)
	adminOnly := func(o *huma.Operation) {
		o.Tags = []string{"admin"}
		o.Security = []map[string][]string{{"bearerAuth": {}}}
		o.Middlewares = huma.Middlewares{requireAdmin}
	}
	huma.Get(api, "/api/admin/individuals", adminHandler.HandleListIndividuals, adminOnly)
	huma.Get(api, "/api/admin/groups", adminHandler.HandleListGroups, adminOnly)

	return api
}
