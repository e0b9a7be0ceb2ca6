package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fragpit/songvote/internal/auth"
	"github.com/fragpit/songvote/internal/model"
)

type ctxKey string

const CtxPrincipalKey ctxKey = "principal"

// MsgLoginRequired is the body message of every 401 on the songs API.
const MsgLoginRequired = "login required to withdraw a submission"

func PrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	p, ok := ctx.Value(CtxPrincipalKey).(model.Principal)
	if !ok || p.UserID == 0 {
		return model.Principal{}, false
	}
	return p, true
}

func WithPrincipal(ctx context.Context, p model.Principal) context.Context {
	return context.WithValue(ctx, CtxPrincipalKey, p)
}

func RequireJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				slog.Warn(
					"authentication error",
					slog.String("error", "header not set"),
				)
				unauthorized(w)
				return
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") ||
				parts[1] == "" {
				unauthorized(w)
				return
			}

			p, err := auth.PrincipalFromJWTToken(secret, parts[1])
			if err != nil {
				slog.Warn("invalid jwt", slog.Any("error", err))
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"message": MsgLoginRequired,
	}); err != nil {
		slog.Warn("failed to write response", slog.Any("error", err))
	}
}
