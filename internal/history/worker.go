package history

import (
	"checkups/pkg/logger"
	"checkups/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// RecordSearchWorker stores RecordSearch jobs.
type RecordSearchWorker struct {
	river.WorkerDefaults[RecordSearchArgs]

	storage storage.HistoryStorage
}

func NewRecordSearchWorker(s storage.HistoryStorage) *RecordSearchWorker {
	return &RecordSearchWorker{storage: s}
}

func (w *RecordSearchWorker) Work(ctx context.Context, job *river.Job[RecordSearchArgs]) error {
	rec := job.Args.Record
	ctx = logger.WithFields(ctx, zap.Int64("job_id", job.ID), zap.Stringer("record_id", rec.ID))

	stored, err := w.storage.StoreSearchRecords(ctx, rec)
	if err != nil {
		logger.Warn(ctx, "could not store search record", zap.Error(err), zap.Int("attempt", job.Attempt))

		return fmt.Errorf("could not store search record: %w", err)
	}
	if len(stored) == 0 {
		logger.Debug(ctx, "search record already stored")
	}

	return nil
}

func (w *RecordSearchWorker) Timeout(*river.Job[RecordSearchArgs]) time.Duration {
	return 10 * time.Second
}

// PruneHistoryWorker deletes records past their retention.
type PruneHistoryWorker struct {
	river.WorkerDefaults[PruneHistoryArgs]

	storage storage.HistoryStorage
	now     func() time.Time
}

func NewPruneHistoryWorker(s storage.HistoryStorage) *PruneHistoryWorker {
	return &PruneHistoryWorker{storage: s, now: time.Now}
}

func (w *PruneHistoryWorker) Work(ctx context.Context, job *river.Job[PruneHistoryArgs]) error {
	if job.Args.Retention <= 0 {
		return river.JobCancel(fmt.Errorf("invalid retention %s", job.Args.Retention))
	}

	before := w.now().Add(-job.Args.Retention)
	n, err := w.storage.PruneSearchRecords(ctx, before)
	if err != nil {
		return fmt.Errorf("could not prune search history: %w", err)
	}

	logger.Info(ctx, "pruned search history", zap.Int64("deleted", n), zap.Time("before", before))

	return nil
}
