package history

import (
	"checkups/pkg/domain"
	"checkups/pkg/serrors"
	"checkups/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit uint = 20
	MaxLimit     uint = 100
)

// Service implements History on top of storage.
type Service struct {
	storage storage.AllStorage
	now     func() time.Time
}

// Ensure Service conforms to the History interface at compile time.
var _ History = (*Service)(nil)

func New(s storage.AllStorage) *Service {
	return &Service{storage: s, now: time.Now}
}

// Record fills a missing ID and creation time and enqueues a RecordSearch job.
func (s *Service) Record(ctx context.Context, rec domain.SearchRecord) error {
	if rec.ID == (domain.SearchRecordID{}) {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("could not generate search record id: %w", err)
		}
		rec.ID = domain.SearchRecordID(id)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now().UTC()
	}

	if _, err := s.storage.AddJob(ctx, RecordSearchArgs{Record: rec}, nil); err != nil {
		return fmt.Errorf("could not enqueue search record: %w", err)
	}

	return nil
}

func (s *Service) Recent(ctx context.Context, limit uint) ([]domain.SearchRecord, error) {
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	records, err := s.storage.RecentSearchRecords(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recent searches: %w", err)
	}

	return records, nil
}

// NewRecord describes a finished search. err takes precedence over result.
func NewRecord(query domain.Query, result domain.SearchResult, err error, took time.Duration, requestID string) domain.SearchRecord {
	rec := domain.SearchRecord{
		Query:     query.String(),
		Duration:  took,
		RequestID: requestID,
	}

	switch {
	case err != nil:
		rec.Outcome = domain.OutcomeError
		rec.Error = serrors.MessageOf(err)
		if rec.Error == "" {
			rec.Error = err.Error()
		}
	default:
		rec.Outcome = result.Outcome()
		rec.PackageCount = len(result.Packages())
		rec.Error = result.Message()
	}

	return rec
}
