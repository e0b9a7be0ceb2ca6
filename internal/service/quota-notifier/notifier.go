package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fragpit/songvote/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	clientTimeout     = 5 * time.Second
	refundsURL        = "/api/quota/refunds"
	idempotencyHeader = "Idempotency-Key"
)

type refundRequest struct {
	UserID int               `json:"userId"`
	SongID uuid.UUID         `json:"songId"`
	Period model.QuotaPeriod `json:"period"`
}

// Notifier reports refundable withdrawals to the external quota service.
type Notifier struct {
	Client *resty.Client
}

func NewNotifier(quotaServiceAddress string) *Notifier {
	client := resty.New()

	client.
		SetTimeout(clientTimeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(shouldRetry).
		SetBaseURL(quotaServiceAddress)

	return &Notifier{
		Client: client,
	}
}

func (n *Notifier) NotifyRefund(
	ctx context.Context,
	userID int,
	songID uuid.UUID,
	period model.QuotaPeriod,
) error {
	slog.Debug(
		"sending quota refund",
		slog.Int("user_id", userID),
		slog.String("song_id", songID.String()),
	)

	// A song is withdrawn once, so its id dedupes retried refunds.
	resp, err := n.Client.R().
		SetContext(ctx).
		SetHeader(idempotencyHeader, songID.String()).
		SetBody(refundRequest{
			UserID: userID,
			SongID: songID,
			Period: period,
		}).
		Post(refundsURL)
	if err != nil {
		return fmt.Errorf("failed to request quota refund: %w", err)
	}

	switch sc := resp.StatusCode(); sc {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		return fmt.Errorf("failed to request quota refund, http_code=%d", sc)
	}
}

func shouldRetry(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return r != nil && r.StatusCode() >= http.StatusInternalServerError
}
