package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fragpit/songvote/internal/api/middleware"
	"github.com/fragpit/songvote/internal/model"
	"github.com/google/uuid"
)

const (
	msgCountFailed     = "failed to get song count"
	msgLoginRequired   = middleware.MsgLoginRequired
	msgSongIDRequired  = "song id is required"
	msgSongIDInvalid   = "invalid song id"
	msgSongNotFound    = "song not found"
	msgNotOwner        = "only your own submissions can be withdrawn"
	msgSongPlayed      = "cannot withdraw a played submission"
	msgSongScheduled   = "cannot withdraw a scheduled submission"
	msgWithdrawFailed  = "failed to withdraw song"
	msgWithdrawn       = "song withdrawn"
	msgWithdrawnRefund = "song withdrawn, submission quota returned"
	semesterQueryParam = "semester"
)

//go:generate mockgen -destination ./mocks/songs_mock.go -package mock_handlers . SongsService
type SongsService interface {
	CountSongs(ctx context.Context, semester string) (int, error)
	Withdraw(
		ctx context.Context,
		p model.Principal,
		songID uuid.UUID,
	) (*model.WithdrawResult, error)
}

type songsCountResponse struct {
	Count int `json:"count"`
}

func NewSongsCountHandler(svc SongsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		semester := r.URL.Query().Get(semesterQueryParam)

		count, err := svc.CountSongs(r.Context(), semester)
		if err != nil {
			slog.Error(
				"songs count request error",
				slog.String("semester", semester),
				slog.Any("error", err),
			)
			writeJSONError(w, http.StatusInternalServerError, msgCountFailed)
			return
		}

		writeJSON(w, http.StatusOK, songsCountResponse{Count: count})
	})
}

type songWithdrawRequest struct {
	SongID string `json:"songId"`
}

type songWithdrawResponse struct {
	Message       string    `json:"message"`
	SongID        uuid.UUID `json:"songId"`
	QuotaReturned bool      `json:"quotaReturned"`
}

func NewSongWithdrawHandler(svc SongsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		principal, ok := middleware.PrincipalFromContext(ctx)
		if !ok {
			slog.Error(
				"withdraw request error",
				slog.String("error", "failed to get user from context"),
			)
			writeJSONError(w, http.StatusUnauthorized, msgLoginRequired)
			return
		}

		var req songWithdrawRequest
		if !ValidateParseJSONRequest(w, r, &req) {
			return
		}

		rawID := strings.TrimSpace(req.SongID)
		if rawID == "" {
			slog.Warn("withdraw request without song id")
			writeJSONError(w, http.StatusBadRequest, msgSongIDRequired)
			return
		}

		songID, err := uuid.Parse(rawID)
		if err != nil {
			slog.Warn(
				"withdraw request with bad song id",
				slog.String("song_id", rawID),
			)
			writeJSONError(w, http.StatusBadRequest, msgSongIDInvalid)
			return
		}

		res, err := svc.Withdraw(ctx, principal, songID)
		if err != nil {
			slog.Warn(
				"error withdrawing song",
				slog.String("song_id", songID.String()),
				slog.Int("user_id", principal.UserID),
				slog.Any("error", err),
			)
			code, msg := withdrawErrorResponse(err)
			writeJSONError(w, code, msg)
			return
		}

		msg := msgWithdrawn
		if res.QuotaReturned {
			msg = msgWithdrawnRefund
		}

		writeJSON(w, http.StatusOK, songWithdrawResponse{
			Message:       msg,
			SongID:        res.SongID,
			QuotaReturned: res.QuotaReturned,
		})
	})
}

func withdrawErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrSongNotFound):
		return http.StatusNotFound, msgSongNotFound
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, msgNotOwner
	case errors.Is(err, model.ErrSongPlayed):
		return http.StatusBadRequest, msgSongPlayed
	case errors.Is(err, model.ErrSongScheduled):
		return http.StatusBadRequest, msgSongScheduled
	default:
		return http.StatusInternalServerError, msgWithdrawFailed
	}
}
