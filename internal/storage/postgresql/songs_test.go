package postgresql

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/fragpit/songvote/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lockSongSQL    = `FROM songs s\s+WHERE s.id = \$1\s+FOR UPDATE`
	deleteVotesSQL = regexp.QuoteMeta(`DELETE FROM votes WHERE song_id = $1`)
	deleteSongSQL  = regexp.QuoteMeta(`DELETE FROM songs WHERE id = $1`)
	serializableTx = pgx.TxOptions{IsoLevel: pgx.Serializable}
)

func newTestSongsRepo(t *testing.T) (*SongsRepo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	base := newBaseRepo(mock)
	base.retrier.WithDelays()
	base.txRetrier.WithDelays(time.Millisecond)

	return &SongsRepo{baseRepo: base}, mock
}

func lockRows(played, scheduled bool) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"played", "exists"}).
		AddRow(played, scheduled)
}

func TestSongsRepo_CountSongs(t *testing.T) {
	tests := []struct {
		name    string
		filter  model.SongFilter
		prepare func(m pgxmock.PgxPoolIface)
		want    int
		wantErr bool
	}{
		{
			name:   "all songs",
			filter: model.SongFilter{},
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`^SELECT COUNT\(\*\) FROM songs$`).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
			},
			want: 12,
		},
		{
			name:   "by semester",
			filter: model.SongFilter{Semester: "2024-S1"},
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(
					`SELECT COUNT(*) FROM songs WHERE semester = $1`,
				)).
					WithArgs("2024-S1").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
			},
			want: 3,
		},
		{
			name:   "whitespace semester still filters",
			filter: model.NewSongFilter(" "),
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta(
					`SELECT COUNT(*) FROM songs WHERE semester = $1`,
				)).
					WithArgs(" ").
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
			},
			want: 0,
		},
		{
			name:   "query error",
			filter: model.SongFilter{},
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(`SELECT COUNT`).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSongsRepo(t)
			tt.prepare(mock)

			got, err := repo.CountSongs(context.Background(), tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSongsRepo_GetSettings(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	settingsSQL := `FROM system_settings`

	t.Run("row present", func(t *testing.T) {
		repo, mock := newTestSongsRepo(t)
		mock.ExpectQuery(settingsSQL).WillReturnRows(
			pgxmock.NewRows([]string{
				"daily_submission_limit",
				"weekly_submission_limit",
			}).AddRow(2, 5),
		)

		s, err := repo.GetSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, model.SystemSettings{
			DailySubmissionLimit:  2,
			WeeklySubmissionLimit: 5,
		}, s)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row absent", func(t *testing.T) {
		repo, mock := newTestSongsRepo(t)
		mock.ExpectQuery(settingsSQL).WillReturnError(pgx.ErrNoRows)

		s, err := repo.GetSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, model.SystemSettings{}, s)
		assert.Equal(t, model.QuotaPeriodNone, s.QuotaPolicy().Period())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestSongsRepo(t)
		mock.ExpectQuery(settingsSQL).WillReturnError(errors.New("boom"))

		_, err := repo.GetSettings(context.Background())
		assert.Error(t, err)
	})
}

func TestSongsRepo_GetSongByID(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestSongsRepo(t)
		mock.ExpectQuery(`FROM songs\s+WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "requester_id", "title", "artist",
				"semester", "played", "created_at",
			}).AddRow(id, 7, "Song", "Band", "2024-S1", false, created))

		s, err := repo.GetSongByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, &model.Song{
			ID:          id,
			RequesterID: 7,
			Title:       "Song",
			Artist:      "Band",
			Semester:    "2024-S1",
			CreatedAt:   created,
		}, s)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestSongsRepo(t)
		mock.ExpectQuery(`FROM songs\s+WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetSongByID(context.Background(), id)
		assert.ErrorIs(t, err, model.ErrSongNotFound)
	})
}

func TestSongsRepo_DeleteSong(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		prepare func(m pgxmock.PgxPoolIface)
		wantErr error
		anyErr  bool
	}{
		{
			name: "votes then song in one transaction",
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectBeginTx(serializableTx)
				m.ExpectQuery(lockSongSQL).WithArgs(id).
					WillReturnRows(lockRows(false, false))
				m.ExpectExec(deleteVotesSQL).WithArgs(id).
					WillReturnResult(pgxmock.NewResult("DELETE", 3))
				m.ExpectExec(deleteSongSQL).WithArgs(id).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				m.ExpectCommit()
			},
		},
		{
			name: "song gone before lock",
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectBeginTx(serializableTx)
				m.ExpectQuery(lockSongSQL).WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
				m.ExpectRollback()
			},
			wantErr: model.ErrSongNotFound,
		},
		{
			name: "played by the time of lock",
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectBeginTx(serializableTx)
				m.ExpectQuery(lockSongSQL).WithArgs(id).
					WillReturnRows(lockRows(true, false))
				m.ExpectRollback()
			},
			wantErr: model.ErrSongPlayed,
		},
		{
			name: "scheduled by the time of lock",
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectBeginTx(serializableTx)
				m.ExpectQuery(lockSongSQL).WithArgs(id).
					WillReturnRows(lockRows(false, true))
				m.ExpectRollback()
			},
			wantErr: model.ErrSongScheduled,
		},
		{
			name: "no song row deleted",
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectBeginTx(serializableTx)
				m.ExpectQuery(lockSongSQL).WithArgs(id).
					WillReturnRows(lockRows(false, false))
				m.ExpectExec(deleteVotesSQL).WithArgs(id).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				m.ExpectExec(deleteSongSQL).WithArgs(id).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				m.ExpectRollback()
			},
			wantErr: model.ErrSongNotFound,
		},
		{
			name: "votes delete fails",
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectBeginTx(serializableTx)
				m.ExpectQuery(lockSongSQL).WithArgs(id).
					WillReturnRows(lockRows(false, false))
				m.ExpectExec(deleteVotesSQL).WithArgs(id).
					WillReturnError(errors.New("disk full"))
				m.ExpectRollback()
			},
			anyErr: true,
		},
		{
			name: "serialization failure is retried",
			prepare: func(m pgxmock.PgxPoolIface) {
				m.ExpectBeginTx(serializableTx)
				m.ExpectQuery(lockSongSQL).WithArgs(id).
					WillReturnRows(lockRows(false, false))
				m.ExpectExec(deleteVotesSQL).WithArgs(id).
					WillReturnError(&pgconn.PgError{
						Code: pgerrcode.SerializationFailure,
					})
				m.ExpectRollback()

				m.ExpectBeginTx(serializableTx)
				m.ExpectQuery(lockSongSQL).WithArgs(id).
					WillReturnRows(lockRows(false, false))
				m.ExpectExec(deleteVotesSQL).WithArgs(id).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				m.ExpectExec(deleteSongSQL).WithArgs(id).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				m.ExpectCommit()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSongsRepo(t)
			tt.prepare(mock)

			err := repo.DeleteSong(context.Background(), id)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
