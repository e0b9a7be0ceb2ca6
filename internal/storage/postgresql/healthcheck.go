package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fragpit/songvote/internal/service/healthcheck"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTimeout = 2 * time.Second

var _ healthcheck.HealthRepository = (*HealthRepo)(nil)

type HealthRepo struct {
	baseRepo
}

func (r *HealthRepo) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("database connection not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}

	if pool, ok := r.db.(*pgxpool.Pool); ok {
		stat := pool.Stat()
		slog.Debug(
			"database pool",
			slog.Int("total_conns", int(stat.TotalConns())),
			slog.Int("idle_conns", int(stat.IdleConns())),
		)
	}

	return nil
}
