package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/reach-summit/summit-api/internal/auth"
	"github.com/reach-summit/summit-api/internal/registration"
)

// Authenticator is the part of auth.Authenticator used by the handlers.
type Authenticator interface {
	Login(password string) (auth.Credential, error)
	Middleware(api huma.API) func(ctx huma.Context, next func(huma.Context))
}

type AdminHandler struct {
	svc  RegistrationService
	auth Authenticator
	log  *zap.Logger
}

func NewAdminHandler(svc RegistrationService, authenticator Authenticator, log *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, auth: authenticator, log: log}
}

const maxLoginBody = 4 << 10

// LoginRequest decodes its own body so a malformed, mistyped or empty payload
// fails the same way as a wrong password.
type LoginRequest struct {
	password string
}

func (r *LoginRequest) Resolve(ctx huma.Context) []error {
	var body struct {
		Password string `json:"password"`
	}
	if reader := ctx.BodyReader(); reader != nil {
		_ = json.NewDecoder(io.LimitReader(reader, maxLoginBody)).Decode(&body)
	}
	r.password = body.Password
	return nil
}

type LoginResponse struct {
	Body auth.Credential
}

func (h *AdminHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	cred, err := h.auth.Login(input.password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.log.Warn("admin login rejected")
		return nil, huma.Error401Unauthorized("invalid credentials")
	}
	if err != nil {
		h.log.Error("admin login failed", zap.Error(err))
		return nil, huma.Error500InternalServerError("internal server error")
	}

	h.log.Info("admin login", zap.Time("expires_at", cred.ExpiresAt))
	return &LoginResponse{Body: cred}, nil
}

type IndividualsResponse struct {
	Body []registration.IndividualRecord
}

func (h *AdminHandler) HandleListIndividuals(ctx context.Context, _ *struct{}) (*IndividualsResponse, error) {
	recs, err := h.svc.ListIndividuals(ctx)
	if err != nil {
		return nil, toHTTPError(h.log, err)
	}
	return &IndividualsResponse{Body: recs}, nil
}

type GroupsResponse struct {
	Body []registration.GroupRecord
}

func (h *AdminHandler) HandleListGroups(ctx context.Context, _ *struct{}) (*GroupsResponse, error) {
	recs, err := h.svc.ListGroups(ctx)
	if err != nil {
		return nil, toHTTPError(h.log, err)
	}
	return &GroupsResponse{Body: recs}, nil
}
