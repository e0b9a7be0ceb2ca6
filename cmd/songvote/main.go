package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fragpit/songvote/internal/api/router"
	"github.com/fragpit/songvote/internal/config"
	"github.com/fragpit/songvote/internal/service/auth"
	"github.com/fragpit/songvote/internal/service/healthcheck"
	notifier "github.com/fragpit/songvote/internal/service/quota-notifier"
	"github.com/fragpit/songvote/internal/service/songs"
	"github.com/fragpit/songvote/internal/storage/postgresql"
	"github.com/fragpit/songvote/internal/storage/rediscache"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	cfg, err := config.NewConfig()
	if err != nil {
		slog.Error("failed to initialize config", slog.Any("error", err))
		os.Exit(1)
	}

	var logLevel slog.Level
	switch strings.ToUpper(cfg.LogLevel) {
	case slog.LevelDebug.String():
		logLevel = slog.LevelDebug
	case slog.LevelWarn.String():
		logLevel = slog.LevelWarn
	case slog.LevelError.String():
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if logLevel == slog.LevelDebug {
		slog.Debug("running with config")
		fmt.Println(cfg.String())
	}

	if err := run(ctx, cfg); err != nil {
		slog.Error("app failed", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("app shut down successfully")
}

func run(ctx context.Context, cfg *config.Config) error {
	slog.Info("starting app")

	pgStorage, err := postgresql.NewStorage(ctx, cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer pgStorage.Close()

	rdb, err := rediscache.Connect(ctx, cfg.RedisAddress)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer func() { _ = rdb.Close() }()

	songsCache := rediscache.NewSongsCache(rdb)
	routerDeps := buildRouterDeps(cfg, pgStorage, songsCache)
	r := router.NewRouter(routerDeps)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting api", slog.String("address", cfg.RunAddress))
		if err := r.Run(ctx, cfg.RunAddress); err != nil {
			return fmt.Errorf("api failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func buildRouterDeps(
	cfg *config.Config,
	st *postgresql.Repositories,
	cache *rediscache.SongsCache,
) router.StorageDeps {
	healthSvc := healthcheck.NewHealthcheckService(st.Health, cache)
	authSvc := auth.NewAuthService(
		st.Users,
		cfg.JWTSecret,
		cfg.JWTTTL,
	)

	songsSvc := songs.NewSongsService(st.Songs, cache, cfg.Location())
	if cfg.QuotaServiceAddress != "" {
		slog.Info(
			"quota refunds enabled",
			slog.String("address", cfg.QuotaServiceAddress),
		)
		songsSvc.WithQuotaNotifier(notifier.NewNotifier(cfg.QuotaServiceAddress))
	}

	return router.StorageDeps{
		JWTSecret:     cfg.JWTSecret,
		HealthService: healthSvc,
		AuthService:   authSvc,
		SongsService:  songsSvc,
	}
}
