package router

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fragpit/songvote/internal/api/handlers"
	"github.com/fragpit/songvote/internal/api/middleware"
)

const (
	apiShutdownTimeout = 5 * time.Second
	readHeaderTimeout  = 5 * time.Second
)

type StorageDeps struct {
	JWTSecret     string
	HealthService handlers.HealthService
	AuthService   handlers.AuthService
	SongsService  handlers.SongsService
}

type Router struct {
	router http.Handler
}

func NewRouter(deps StorageDeps) *Router {
	mux := http.NewServeMux()
	requireJWT := middleware.RequireJWT(deps.JWTSecret)

	mux.Handle("GET /health", handlers.NewHealthHandler(deps.HealthService))

	mux.Handle(
		"POST /api/user/register",
		handlers.NewAuthRegisterHandler(deps.AuthService),
	)
	mux.Handle(
		"POST /api/user/login",
		handlers.NewAuthLoginHandler(deps.AuthService),
	)

	mux.Handle(
		"GET /api/songs/count",
		handlers.NewSongsCountHandler(deps.SongsService),
	)
	mux.Handle(
		"POST /api/songs/withdraw",
		requireJWT(handlers.NewSongWithdrawHandler(deps.SongsService)),
	)

	return &Router{
		router: middleware.Log()(mux),
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", slog.Any("error", err))
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(
			context.WithoutCancel(ctx),
			apiShutdownTimeout,
		)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error(
				"failed to shutdown server gracefully",
				slog.Any("error", err),
			)
			return err
		}

		slog.Info("api shut down gracefully")
	}

	return nil
}
