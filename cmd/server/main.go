package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/brewandbake/internal/auth"
	"github.com/mmynk/brewandbake/internal/config"
	"github.com/mmynk/brewandbake/internal/metrics"
	"github.com/mmynk/brewandbake/internal/server"
	"github.com/mmynk/brewandbake/internal/session"
	"github.com/mmynk/brewandbake/internal/storage/sqlite"
	"github.com/mmynk/brewandbake/pkg/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logger := logging.SetupWith(cfg.LogLevel, cfg.LogFormat)

	if cfg.SecretGenerated {
		slog.Warn("SESSION_SECRET not set, using a random secret; order sessions will not survive a restart")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	m := metrics.New(prometheus.DefaultRegisterer)
	sessions := session.NewStore(cfg.SessionTTL, session.WithMetrics(m))
	tokens := auth.NewTokenManager(cfg.SessionSecret)

	janitor := session.NewJanitor(sessions,
		session.WithInterval(cfg.SweepInterval),
		session.WithLogger(logger.With("component", "session-janitor")),
	)
	go janitor.Run(ctx)

	var staticDir string
	if cfg.StaticPath != "" {
		staticDir, err = filepath.Abs(cfg.StaticPath)
		if err != nil {
			return err
		}
		slog.Info("Serving static files", "path", staticDir)
	}

	handler := server.NewHandler(server.Deps{
		Store:     store,
		Sessions:  sessions,
		Tokens:    tokens,
		Metrics:   m,
		Gatherer:  prometheus.DefaultGatherer,
		StaticDir: staticDir,
	})

	slog.Info("Listening", "address", cfg.Addr(), "url", "http://localhost"+cfg.Addr(),
		"session_ttl", cfg.SessionTTL)
	return server.Run(ctx, cfg.Addr(), handler)
}
