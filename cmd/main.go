package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"studio-booking/internal/app"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/pkg/config"
)

// Boot entrypoint: loads config, connects the pool, and runs the additive
// schema bootstrap. Guard failures degrade instead of aborting; only config
// and connection errors are fatal.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	ctx := context.Background()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	application := app.New(pool, logger)

	if cfg.Schema.Guard {
		application.Guard.Ensure(ctx)
	}

	logger.Info("booking lifecycle engine bootstrapped")
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
