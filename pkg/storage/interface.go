// Package storage defines the persistence interfaces of checkups. Backends
// such as pkg/storage/postgres implement them, including transactions.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"checkups/pkg/domain"
	"context"
	"time"

	"github.com/riverqueue/river"
)

// HistoryStorage persists the search history.
type HistoryStorage interface {
	// StoreSearchRecords inserts records and returns them as stored. Records
	// whose ID already exists are skipped, so retried inserts are idempotent.
	StoreSearchRecords(ctx context.Context, records ...domain.SearchRecord) ([]domain.SearchRecord, error)
	// RecentSearchRecords returns up to limit records, newest first.
	RecentSearchRecords(ctx context.Context, limit uint) ([]domain.SearchRecord, error)
	// PruneSearchRecords deletes records created before the given time and
	// returns how many were removed.
	PruneSearchRecords(ctx context.Context, before time.Time) (int64, error)
}

// JobStorage enqueues background jobs. Inside a transaction the job becomes
// visible only once the transaction commits.
type JobStorage interface {
	// AddJob returns false when the job was skipped as a duplicate.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// AllStorage groups every capability available both inside and outside a
// transaction.
type AllStorage interface {
	HistoryStorage
	JobStorage
}

// TxStorage is a storage handle bound to a transaction. It is unusable after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the non-transactional handle.
type Storage interface {
	AllStorage

	// Close releases the underlying connections.
	Close() error
	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
