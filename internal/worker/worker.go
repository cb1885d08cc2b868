// Package worker runs the background jobs of the application on River.
package worker

import (
	"context"
	"fmt"
	"guidiqo/internal/config"
	"guidiqo/pkg/logger"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client and the newsletter delivery.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// BatchSize is the number of recipients per provider call.
	BatchSize int
	// SendRate is the number of provider calls per second across all jobs.
	SendRate float64
	// RateLimitSnooze is how long a job waits after the provider throttled it.
	RateLimitSnooze time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Worker.MaxWorkers,
		BatchSize:       cfg.Newsletter.BatchSize,
		SendRate:        cfg.Newsletter.SendRate,
		RateLimitSnooze: cfg.Worker.RateLimitSnooze,
	}
}

// Start registers the workers and starts a River client processing the
// default queue. The caller stops it on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	options Options,
	newsletterWorker *NewsletterWorker) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, newsletterWorker)

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
