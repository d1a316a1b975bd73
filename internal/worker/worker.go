// Package worker runs the River client that processes background jobs.
package worker

import (
	"checkups/internal/history"
	"checkups/pkg/logger"
	"checkups/pkg/storage"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const pruneInterval = time.Hour

type Options struct {
	// MaxWorkers bounds concurrent jobs on the default queue.
	MaxWorkers int
	// Retention of search history; zero disables pruning.
	Retention time.Duration
}

// Workers registers the history workers on a new river.Workers bundle.
func Workers(s storage.HistoryStorage) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, history.NewRecordSearchWorker(s))
	river.AddWorker(workers, history.NewPruneHistoryWorker(s))

	return workers
}

// PeriodicJobs returns the scheduled jobs for opts.
func PeriodicJobs(opts Options) []*river.PeriodicJob {
	if opts.Retention <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(pruneInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return history.PruneHistoryArgs{Retention: opts.Retention}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// Start creates and starts a River client on dbPool. Stop it with
// client.Stop on shutdown.
func Start(ctx context.Context, dbPool *pgxpool.Pool, s storage.HistoryStorage, opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      Workers(s),
		PeriodicJobs: PeriodicJobs(opts),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
