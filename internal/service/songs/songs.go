package songs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fragpit/songvote/internal/api/handlers"
	"github.com/fragpit/songvote/internal/model"
	"github.com/google/uuid"
)

// Bounds cache invalidation and refund notification once the delete has
// committed.
const postCommitTimeout = 5 * time.Second

var _ handlers.SongsService = (*SongsService)(nil)

//go:generate mockgen -destination ./mocks/songs_cache.go -package mocks . SongsCache
type SongsCache interface {
	InvalidateSongs(ctx context.Context) error
}

//go:generate mockgen -destination ./mocks/quota_notifier.go -package mocks . QuotaNotifier
type QuotaNotifier interface {
	NotifyRefund(
		ctx context.Context,
		userID int,
		songID uuid.UUID,
		period model.QuotaPeriod,
	) error
}

type SongsService struct {
	repo     model.SongsRepository
	cache    SongsCache
	notifier QuotaNotifier

	loc *time.Location
	now func() time.Time
}

func NewSongsService(
	repo model.SongsRepository,
	cache SongsCache,
	loc *time.Location,
) *SongsService {
	if loc == nil {
		loc = time.Local
	}

	return &SongsService{
		repo:  repo,
		cache: cache,
		loc:   loc,
		now:   time.Now,
	}
}

// WithQuotaNotifier enables refund notifications for withdrawn songs.
func (s *SongsService) WithQuotaNotifier(n QuotaNotifier) *SongsService {
	s.notifier = n
	return s
}

func (s *SongsService) CountSongs(
	ctx context.Context,
	semester string,
) (int, error) {
	return s.repo.CountSongs(ctx, model.NewSongFilter(semester))
}

func (s *SongsService) Withdraw(
	ctx context.Context,
	p model.Principal,
	songID uuid.UUID,
) (*model.WithdrawResult, error) {
	song, err := s.repo.GetSongByID(ctx, songID)
	if err != nil {
		return nil, err
	}

	if !p.CanManage(song.RequesterID) {
		return nil, model.ErrForbidden
	}

	if err := song.CheckWithdrawable(false); err != nil {
		return nil, err
	}

	scheduled, err := s.repo.IsScheduled(ctx, songID)
	if err != nil {
		return nil, err
	}
	if err := song.CheckWithdrawable(scheduled); err != nil {
		return nil, err
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	policy := settings.QuotaPolicy()
	refund := policy.RefundEligible(song.CreatedAt, s.now().In(s.loc))

	if err := s.repo.DeleteSong(ctx, songID); err != nil {
		return nil, fmt.Errorf("withdraw: %w", err)
	}

	slog.Info(
		"song withdrawn",
		slog.String("song_id", songID.String()),
		slog.Int("user_id", p.UserID),
		slog.Bool("quota_returned", refund),
	)

	// The song is gone; a client hanging up must not cancel the cleanup.
	postCtx, cancel := context.WithTimeout(
		context.WithoutCancel(ctx),
		postCommitTimeout,
	)
	defer cancel()

	if err := s.cache.InvalidateSongs(postCtx); err != nil {
		slog.Error("failed to clear songs cache", slog.Any("error", err))
	} else {
		slog.Debug("songs cache cleared")
	}

	if refund && s.notifier != nil {
		if err := s.notifier.NotifyRefund(
			postCtx,
			song.RequesterID,
			songID,
			policy.Period(),
		); err != nil {
			slog.Error(
				"failed to notify quota service",
				slog.String("song_id", songID.String()),
				slog.Any("error", err),
			)
		}
	}

	return &model.WithdrawResult{
		SongID:        songID,
		QuotaReturned: refund,
	}, nil
}
