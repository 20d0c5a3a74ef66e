// Package auth issues and verifies the bearer tokens that guard the admin
// endpoints.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	issuer  = "summit-api"
	subject = "admin"
	bearer  = "Bearer "
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingCredential  = errors.New("missing credential")
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrExpiredCredential  = errors.New("expired credential")
)

// Config holds the admin secret and signing material. When AdminPasswordHash
// is set it takes precedence over AdminPassword.
type Config struct {
	AdminPassword     string
	AdminPasswordHash string
	SigningKey        []byte
	Validity          time.Duration
}

type Credential struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	cfg Config
	now func() time.Time
}

type Option func(*Authenticator)

func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) { a.now = now }
}

func New(cfg Config, opts ...Option) (*Authenticator, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, errors.New("auth: signing key is required")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, errors.New("auth: admin password or password hash is required")
	}
	if cfg.Validity <= 0 {
		return nil, fmt.Errorf("auth: token validity must be positive, got %s", cfg.Validity)
	}
	a := &Authenticator{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Login checks password against the configured admin secret and issues a
// token valid for the configured window.
func (a *Authenticator) Login(password string) (Credential, error) {
	if !a.passwordMatches(password) {
		return Credential{}, ErrInvalidCredentials
	}

	issued := a.now().UTC().Truncate(time.Second)
	expires := issued.Add(a.cfg.Validity)
	claims := Claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.cfg.SigningKey)
	if err != nil {
		return Credential{}, fmt.Errorf("sign token: %w", err)
	}
	return Credential{Token: token, ExpiresAt: expires}, nil
}

func (a *Authenticator) passwordMatches(password string) bool {
	if password == "" {
		return false
	}
	if a.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.cfg.AdminPassword), []byte(password)) == 1
}

func (a *Authenticator) Verify(token string) error {
	if token == "" {
		return ErrMissingCredential
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return a.cfg.SigningKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
		// jwt/v5 rejects at exp; a token stays valid through its exp instant.
		jwt.WithLeeway(time.Nanosecond),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredCredential
	case err != nil:
		return ErrInvalidCredential
	case !parsed.Valid || !claims.Admin:
		return ErrInvalidCredential
	}
	return nil
}

// Authorize verifies the Bearer token in an Authorization header value. The
// returned huma error does not say which check failed.
func (a *Authenticator) Authorize(_ context.Context, header string) error {
	token, err := bearerToken(header)
	if err == nil {
		err = a.Verify(token)
	}
	if err != nil {
		return huma.Error401Unauthorized("unauthorized")
	}
	return nil
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingCredential
	}
	if len(header) < len(bearer) || !strings.EqualFold(header[:len(bearer)], bearer) {
		return "", ErrInvalidCredential
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}
