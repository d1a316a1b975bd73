package postgres

import (
	"checkups/pkg/domain"
	"checkups/pkg/storage"
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const searchHistoryTable = "search_history"

func (p *PgSQL) StoreSearchRecords(ctx context.Context, records ...domain.SearchRecord) ([]domain.SearchRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	var stored []PgSearchRecord
	if err := p.Builder.Insert(searchHistoryTable).
		Rows(domainRecordsToPg(records)).
		OnConflict(goqu.DoNothing()).
		Returning(&PgSearchRecord{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store search records into pg: %w", err)
	}

	return pgRecordsToDomain(stored), nil
}

// RecentSearchRecords returns the newest records ordered by created_at DESC, id DESC.
func (p *PgSQL) RecentSearchRecords(ctx context.Context, limit uint) ([]domain.SearchRecord, error) {
	if limit == 0 {
		return nil, storage.ErrInvalidLimit
	}

	var rows []PgSearchRecord
	if err := p.Builder.From(searchHistoryTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent search records from pg: %w", err)
	}

	return pgRecordsToDomain(rows), nil
}

func (p *PgSQL) PruneSearchRecords(ctx context.Context, before time.Time) (int64, error) {
	res, err := p.Builder.Delete(searchHistoryTable).
		Where(goqu.I("created_at").Lt(before)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not prune search records in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count pruned search records: %w", err)
	}

	return n, nil
}
