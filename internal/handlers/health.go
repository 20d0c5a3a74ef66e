package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/reach-summit/summit-api/internal/store"
)

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	db  store.Pinger
	log *zap.Logger
}

func NewHealthHandler(db store.Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

type HealthResponse struct {
	Status int
	Body   struct {
		Status   string `json:"status" enum:"ok,degraded"`
		Database string `json:"database" enum:"up,down"`
	}
}

func (h *HealthHandler) HandleHealth(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	res := &HealthResponse{Status: http.StatusOK}
	res.Body.Status = "ok"
	res.Body.Database = "up"

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		res.Status = http.StatusServiceUnavailable
		res.Body.Status = "degraded"
		res.Body.Database = "down"
	}
	return res, nil
}
