package handlers

import (
	"context"
	"log/slog"
	"net/http"
)

//go:generate mockgen -destination ./mocks/health_mock.go -package mock_handlers . HealthService
type HealthService interface {
	Check(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

func NewHealthHandler(svc HealthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Check(r.Context()); err != nil {
			slog.Error("health check failed", slog.Any("error", err))
			writeJSON(
				w,
				http.StatusServiceUnavailable,
				healthResponse{Status: "unavailable"},
			)
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	})
}
