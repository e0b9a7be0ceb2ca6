package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fragpit/songvote/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var _ model.SongsRepository = (*SongsRepo)(nil)

type SongsRepo struct {
	baseRepo
}

func (r *SongsRepo) CountSongs(
	ctx context.Context,
	filter model.SongFilter,
) (int, error) {
	q := `SELECT COUNT(*) FROM songs`
	var args []any
	if !filter.IsEmpty() {
		q += ` WHERE semester = $1`
		args = append(args, filter.Semester)
	}

	var count int
	op := func(ctx context.Context) error {
		return r.db.QueryRow(ctx, q, args...).Scan(&count)
	}
	if err := r.retrier.Do(ctx, op); err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}

	return count, nil
}

func (r *SongsRepo) GetSongByID(
	ctx context.Context,
	id uuid.UUID,
) (*model.Song, error) {
	q := `
		SELECT id, requester_id, title, artist, semester, played, created_at
		FROM songs
		WHERE id = $1
	`

	var s model.Song
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(
		&s.ID,
		&s.RequesterID,
		&s.Title,
		&s.Artist,
		&s.Semester,
		&s.Played,
		&s.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to get song by id: %w", err)
	}

	return &s, nil
}

func (r *SongsRepo) IsScheduled(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {
	q := `SELECT EXISTS(SELECT 1 FROM schedules WHERE song_id = $1)`

	var scheduled bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&scheduled); err != nil {
		return false, fmt.Errorf("failed to check schedule: %w", err)
	}

	return scheduled, nil
}

func (r *SongsRepo) GetSettings(
	ctx context.Context,
) (model.SystemSettings, error) {
	q := `
		SELECT daily_submission_limit, weekly_submission_limit
		FROM system_settings
		ORDER BY id
		LIMIT 1
	`

	var s model.SystemSettings
	row := r.db.QueryRow(ctx, q)
	if err := row.Scan(
		&s.DailySubmissionLimit,
		&s.WeeklySubmissionLimit,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			slog.Debug("system settings not found, using defaults")
			return model.SystemSettings{}, nil
		}
		return model.SystemSettings{}, fmt.Errorf(
			"failed to get system settings: %w",
			err,
		)
	}

	return s, nil
}

func (r *SongsRepo) DeleteSong(ctx context.Context, id uuid.UUID) error {
	op := func(ctx context.Context) error {
		tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
			IsoLevel: pgx.Serializable,
		})
		if err != nil {
			return fmt.Errorf("failed to start tx: %w", err)
		}
		defer func() { _ = tx.Rollback(ctx) }()

		q := `
			SELECT
				s.played,
				EXISTS(SELECT 1 FROM schedules sc WHERE sc.song_id = s.id)
			FROM songs s
			WHERE s.id = $1
			FOR UPDATE
		`

		var played, scheduled bool
		if err := tx.QueryRow(ctx, q, id).Scan(&played, &scheduled); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrSongNotFound
			}
			return fmt.Errorf("failed to lock song: %w", err)
		}

		s := model.Song{Played: played}
		if err := s.CheckWithdrawable(scheduled); err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`DELETE FROM votes WHERE song_id = $1`,
			id,
		); err != nil {
			return fmt.Errorf("failed to delete votes: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete song: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrSongNotFound
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit tx: %w", err)
		}
		return nil
	}

	if err := r.txRetrier.Do(ctx, op); err != nil {
		return fmt.Errorf("failed to delete song %s: %w", id, err)
	}
	return nil
}
