package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/tern/v2/migrate"
)

func runMigrations(ctx context.Context, conn *pgxpool.Pool) error {
	poolConn, err := conn.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("error creating pool connection: %w", err)
	}
	defer poolConn.Release()

	m, err := migrate.NewMigrator(ctx, poolConn.Conn(), "songvote_migrations")
	if err != nil {
		return fmt.Errorf("error migrations init: %w", err)
	}

	m.Migrations = []*migrate.Migration{
		{
			Sequence: 1,
			Name:     "init",
			UpSQL: `
			CREATE TABLE IF NOT EXISTS users (
					id SERIAL PRIMARY KEY,
					login VARCHAR(255) UNIQUE NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					role VARCHAR(20) NOT NULL DEFAULT 'USER',
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS songs (
					id UUID PRIMARY KEY,
					requester_id INTEGER NOT NULL REFERENCES users(id),
					title VARCHAR(255) NOT NULL DEFAULT '',
					artist VARCHAR(255) NOT NULL DEFAULT '',
					semester VARCHAR(64) NOT NULL DEFAULT '',
					played BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS schedules (
					id SERIAL PRIMARY KEY,
					song_id UUID NOT NULL REFERENCES songs(id),
					play_date DATE NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			);

			CREATE TABLE IF NOT EXISTS votes (
					id SERIAL PRIMARY KEY,
					song_id UUID NOT NULL REFERENCES songs(id),
					user_id INTEGER NOT NULL REFERENCES users(id),
					created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
					UNIQUE (song_id, user_id)
			);

			CREATE TABLE IF NOT EXISTS system_settings (
					id SERIAL PRIMARY KEY,
					daily_submission_limit INTEGER NOT NULL DEFAULT 0,
					weekly_submission_limit INTEGER NOT NULL DEFAULT 0
			);

			CREATE INDEX IF NOT EXISTS idx_songs_semester
			ON songs (semester);

			CREATE INDEX IF NOT EXISTS idx_schedules_song_id
			ON schedules (song_id);

			CREATE INDEX IF NOT EXISTS idx_votes_song_id
			ON votes (song_id);
			`,
			DownSQL: `
			DROP INDEX IF EXISTS idx_votes_song_id;
			DROP INDEX IF EXISTS idx_schedules_song_id;
			DROP INDEX IF EXISTS idx_songs_semester;

			DROP TABLE IF EXISTS system_settings;
			DROP TABLE IF EXISTS votes;
			DROP TABLE IF EXISTS schedules;
			DROP TABLE IF EXISTS songs;
			DROP TABLE IF EXISTS users;
			`,
		},
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}
