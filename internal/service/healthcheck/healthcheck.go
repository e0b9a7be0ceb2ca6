package healthcheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/songvote/internal/api/handlers"
)

var _ handlers.HealthService = (*HealthService)(nil)

//go:generate mockgen -destination ./mocks/health_repo.go -package mocks . HealthRepository
type HealthRepository interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	db    HealthRepository
	cache HealthRepository
}

func NewHealthcheckService(db, cache HealthRepository) *HealthService {
	return &HealthService{
		db:    db,
		cache: cache,
	}
}

// Check pings the database and the songs cache and reports every failure.
func (h *HealthService) Check(ctx context.Context) error {
	var errs []error
	if err := h.db.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	if err := h.cache.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("cache: %w", err))
	}
	return errors.Join(errs...)
}
