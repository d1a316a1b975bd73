package postgres

import (
	"checkups/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PgSearchRecord is a row of the search_history table.
type PgSearchRecord struct {
	ID uuid.UUID `db:"id"`

	Query        string         `db:"query"`
	Outcome      string         `db:"outcome"`
	PackageCount int            `db:"package_count"`
	Error        sql.NullString `db:"error"`
	DurationMS   int64          `db:"duration_ms"`
	RequestID    sql.NullString `db:"request_id"`

	CreatedAt time.Time `db:"created_at" goqu:"defaultifempty"`
}

func (p *PgSearchRecord) ToDomain() domain.SearchRecord {
	return domain.SearchRecord{
		ID:           domain.SearchRecordID(p.ID),
		Query:        p.Query,
		Outcome:      domain.Outcome(p.Outcome),
		PackageCount: p.PackageCount,
		Error:        p.Error.String,
		Duration:     time.Duration(p.DurationMS) * time.Millisecond,
		RequestID:    p.RequestID.String,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgSearchRecord) FromDomain(r domain.SearchRecord) {
	*p = PgSearchRecord{
		ID:           uuid.UUID(r.ID),
		Query:        r.Query,
		Outcome:      string(r.Outcome),
		PackageCount: r.PackageCount,
		Error:        sql.NullString{String: r.Error, Valid: r.Error != ""},
		DurationMS:   r.Duration.Milliseconds(),
		RequestID:    sql.NullString{String: r.RequestID, Valid: r.RequestID != ""},
		CreatedAt:    r.CreatedAt,
	}
}

func domainRecordsToPg(records []domain.SearchRecord) []PgSearchRecord {
	out := make([]PgSearchRecord, len(records))
	for i := range out {
		out[i].FromDomain(records[i])
	}

	return out
}

func pgRecordsToDomain(records []PgSearchRecord) []domain.SearchRecord {
	out := make([]domain.SearchRecord, 0, len(records))
	for i := range records {
		out = append(out, records[i].ToDomain())
	}

	return out
}
