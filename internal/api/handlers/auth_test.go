package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_handlers "github.com/fragpit/songvote/internal/api/handlers/mocks"
	"github.com/fragpit/songvote/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authCall struct {
	token string
	err   error
}

func TestAuthHandlers(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name        string
		login       bool
		body        string
		contentType string
		call        *authCall
		wantCode    int
		wantBody    string
	}{
		{
			name:        "register",
			body:        `{"login":"alice","password":"long enough pw"}`,
			contentType: "application/json",
			call:        &authCall{token: "tok"},
			wantCode:    http.StatusOK,
			wantBody:    `{"token":"tok"}`,
		},
		{
			name:        "register with charset",
			body:        `{"login":"alice","password":"long enough pw"}`,
			contentType: "application/json; charset=utf-8",
			call:        &authCall{token: "tok"},
			wantCode:    http.StatusOK,
			wantBody:    `{"token":"tok"}`,
		},
		{
			name:        "login taken",
			body:        `{"login":"alice","password":"long enough pw"}`,
			contentType: "application/json",
			call:        &authCall{err: model.ErrUserExists},
			wantCode:    http.StatusConflict,
			wantBody:    `{"message":"login already taken"}`,
		},
		{
			name:        "short password",
			body:        `{"login":"alice","password":"short"}`,
			contentType: "application/json",
			call:        &authCall{err: model.ErrPasswordPolicyViolated},
			wantCode:    http.StatusBadRequest,
			wantBody:    `{"message":"password must be 12 to 64 characters long"}`,
		},
		{
			name:        "register storage failure",
			body:        `{"login":"alice","password":"long enough pw"}`,
			contentType: "application/json",
			call:        &authCall{err: errors.New("db down")},
			wantCode:    http.StatusInternalServerError,
			wantBody:    `{"message":"failed to register"}`,
		},
		{
			name:        "blank login",
			body:        `{"login":"  ","password":"long enough pw"}`,
			contentType: "application/json",
			wantCode:    http.StatusBadRequest,
			wantBody:    `{"message":"login and password are required"}`,
		},
		{
			name:        "login",
			login:       true,
			body:        `{"login":"alice","password":"long enough pw"}`,
			contentType: "application/json",
			call:        &authCall{token: "tok"},
			wantCode:    http.StatusOK,
			wantBody:    `{"token":"tok"}`,
		},
		{
			name:        "wrong password",
			login:       true,
			body:        `{"login":"alice","password":"nope"}`,
			contentType: "application/json",
			call:        &authCall{err: model.ErrInvalidCredentials},
			wantCode:    http.StatusUnauthorized,
			wantBody:    `{"message":"wrong login or password"}`,
		},
		{
			name:        "login storage failure",
			login:       true,
			body:        `{"login":"alice","password":"long enough pw"}`,
			contentType: "application/json",
			call:        &authCall{err: errors.New("db down")},
			wantCode:    http.StatusInternalServerError,
			wantBody:    `{"message":"failed to log in"}`,
		},
		{
			name:        "missing password",
			login:       true,
			body:        `{"login":"alice"}`,
			contentType: "application/json",
			wantCode:    http.StatusBadRequest,
			wantBody:    `{"message":"login and password are required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mock_handlers.NewMockAuthService(ctrl)

			handler := NewAuthRegisterHandler(svc)
			if tt.login {
				handler = NewAuthLoginHandler(svc)
			}

			if tt.call != nil {
				expect := svc.EXPECT().Register
				if tt.login {
					expect = svc.EXPECT().Login
				}
				expect(gomock.Any(), "alice", gomock.Any()).
					Return(tt.call.token, tt.call.err)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(
				http.MethodPost,
				"/api/user/register",
				strings.NewReader(tt.body),
			)
			req.Header.Set("Content-Type", tt.contentType)
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))
			}
		})
	}
}

func TestAuthHandlers_RejectsNonJSON(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	svc := mock_handlers.NewMockAuthService(gomock.NewController(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/user/login",
		strings.NewReader("login=alice"),
	)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	NewAuthLoginHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
