package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fragpit/songvote/internal/utils/retry"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// dbPool is the part of *pgxpool.Pool the repositories use.
type dbPool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Exec(
		ctx context.Context,
		sql string,
		args ...any,
	) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type baseRepo struct {
	db        dbPool
	retrier   *retry.Retrier
	txRetrier *retry.Retrier
}

func newBaseRepo(db dbPool) baseRepo {
	return baseRepo{
		db:        db,
		retrier:   retry.New(isRetryable),
		txRetrier: retry.New(isSerializationFailure),
	}
}

type Repositories struct {
	Health *HealthRepo
	Users  *UsersRepo
	Songs  *SongsRepo

	db *pgxpool.Pool
}

func NewStorage(ctx context.Context, dbDSN string) (*Repositories, error) {
	db, err := pgxpool.New(ctx, dbDSN)
	if err != nil {
		return nil, fmt.Errorf("error creating pgxpool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	base := newBaseRepo(db)

	return &Repositories{
		Health: &HealthRepo{baseRepo: base},
		Users:  &UsersRepo{baseRepo: base},
		Songs:  &SongsRepo{baseRepo: base},
		db:     db,
	}, nil
}

func (r *Repositories) Close() {
	r.db.Close()
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code) ||
			pgerrcode.IsOperatorIntervention(pgErr.Code)
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return true
		}
	}
	return false
}
