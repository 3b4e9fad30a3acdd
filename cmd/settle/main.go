package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hayyakom/internal/adapter/postgres"
	"hayyakom/internal/adapter/usecase"
	"hayyakom/internal/config"
	"hayyakom/internal/db"
	"hayyakom/internal/metrics"
)

// main runs one settlement pass over expired campaigns and exits. It is
// meant to be invoked on a schedule (e.g. daily cron). Exit code 0 means
// the run completed, even when zero campaigns were processed or some
// campaigns were left for retry; a non-zero exit means the store was
// unreachable or the scan itself failed.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	metrics.Register()

	settler := usecase.NewSettler(
		postgres.NewSettlementRepository(pool),
		postgres.NewNotificationRepository(pool),
		logger,
	)

	summary, err := settler.Run(ctx)
	if err != nil {
		logger.Error("settlement run aborted", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("Processing complete. Scanned %d expired campaigns: %d completed, %d failed, %d errored (left for retry).\n",
		summary.Scanned, summary.Completed, summary.Failed, summary.Errored)
}
