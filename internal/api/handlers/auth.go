package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fragpit/songvote/internal/model"
)

//go:generate mockgen -destination ./mocks/auth_mock.go -package mock_handlers . AuthService
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

const (
	msgLoginTaken      = "login already taken"
	msgPasswordPolicy  = "password must be 12 to 64 characters long"
	msgBadCredentials  = "wrong login or password"
	msgRegisterFailed  = "failed to register"
	msgLoginFailed     = "failed to log in"
	msgCredentialsMiss = "login and password are required"
)

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func NewAuthRegisterHandler(svc AuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseAuthRequest(w, r)
		if !ok {
			return
		}

		token, err := svc.Register(r.Context(), req.Login, req.Password)
		if err != nil {
			slog.Warn(
				"register request error",
				slog.String("login", req.Login),
				slog.Any("error", err),
			)
			switch {
			case errors.Is(err, model.ErrUserExists):
				writeJSONError(w, http.StatusConflict, msgLoginTaken)
			case errors.Is(err, model.ErrPasswordPolicyViolated):
				writeJSONError(w, http.StatusBadRequest, msgPasswordPolicy)
			default:
				writeJSONError(w, http.StatusInternalServerError, msgRegisterFailed)
			}
			return
		}

		slog.Info("user registered", slog.String("login", req.Login))
		writeToken(w, token)
	})
}

func NewAuthLoginHandler(svc AuthService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseAuthRequest(w, r)
		if !ok {
			return
		}

		token, err := svc.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			slog.Warn(
				"login request error",
				slog.String("login", req.Login),
				slog.Any("error", err),
			)
			if errors.Is(err, model.ErrInvalidCredentials) {
				writeJSONError(w, http.StatusUnauthorized, msgBadCredentials)
				return
			}
			writeJSONError(w, http.StatusInternalServerError, msgLoginFailed)
			return
		}

		writeToken(w, token)
	})
}

func parseAuthRequest(
	w http.ResponseWriter,
	r *http.Request,
) (authRequest, bool) {
	var req authRequest
	if !ValidateParseJSONRequest(w, r, &req) {
		return req, false
	}

	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		writeJSONError(w, http.StatusBadRequest, msgCredentialsMiss)
		return req, false
	}

	return req, true
}

func writeToken(w http.ResponseWriter, token string) {
	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusOK, authResponse{Token: token})
}
