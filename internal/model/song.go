package model

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSongNotFound  = errors.New("song not found")
	ErrForbidden     = errors.New("song belongs to another user")
	ErrSongPlayed    = errors.New("song already played")
	ErrSongScheduled = errors.New("song already scheduled")
)

//go:generate mockgen -destination ../service/songs/mocks/songs_repo.go -package mocks . SongsRepository
type SongsRepository interface {
	CountSongs(ctx context.Context, filter SongFilter) (int, error)
	GetSongByID(ctx context.Context, id uuid.UUID) (*Song, error)
	IsScheduled(ctx context.Context, id uuid.UUID) (bool, error)
	GetSettings(ctx context.Context) (SystemSettings, error)
	// DeleteSong removes the song and its votes atomically. It re-checks
	// the played and scheduled state under a row lock.
	DeleteSong(ctx context.Context, id uuid.UUID) error
}

type Song struct {
	ID          uuid.UUID
	RequesterID int
	Title       string
	Artist      string
	Semester    string
	Played      bool
	CreatedAt   time.Time
}

// CheckWithdrawable returns the reason the song cannot be removed, if any.
func (s *Song) CheckWithdrawable(scheduled bool) error {
	if s.Played {
		return ErrSongPlayed
	}
	if scheduled {
		return ErrSongScheduled
	}
	return nil
}

// SongFilter narrows a song query. Zero value matches every song.
type SongFilter struct {
	Semester string
}

// NewSongFilter keeps semester verbatim: only an empty value disables the
// filter, so "  " matches no song instead of all of them.
func NewSongFilter(semester string) SongFilter {
	return SongFilter{Semester: semester}
}

func (f SongFilter) IsEmpty() bool {
	return f.Semester == ""
}

type WithdrawResult struct {
	SongID        uuid.UUID
	QuotaReturned bool
}
