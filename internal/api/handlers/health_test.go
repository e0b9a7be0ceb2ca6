package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mock_handlers "github.com/fragpit/songvote/internal/api/handlers/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name        string
		returnError error
		wantCode    int
		wantBody    string
	}{
		{
			name:        "success",
			returnError: nil,
			wantCode:    http.StatusOK,
			wantBody:    `{"status":"ok"}`,
		},
		{
			name:        "fail",
			returnError: errors.New("test error"),
			wantCode:    http.StatusServiceUnavailable,
			wantBody:    `{"status":"unavailable"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockHealthService(ctrl)
			m.EXPECT().Check(gomock.Any()).Return(tc.returnError)

			handler := NewHealthHandler(m)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}
