package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchRecordID uniquely identifies a recorded search.
type SearchRecordID uuid.UUID

func (id SearchRecordID) String() string { return uuid.UUID(id).String() }

func (id SearchRecordID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *SearchRecordID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// Outcome summarizes how a search ended.
type Outcome string

const (
	// OutcomeSuccess means at least one package was returned.
	OutcomeSuccess Outcome = "SUCCESS"
	// OutcomeEmpty means the search succeeded without matches.
	OutcomeEmpty Outcome = "EMPTY"
	// OutcomeError means the search failed.
	OutcomeError Outcome = "ERROR"
)

// SearchRecord is one proxied search kept in the search history.
type SearchRecord struct {
	ID SearchRecordID `json:"id"`

	Query        string        `json:"query"`
	Outcome      Outcome       `json:"outcome"`
	PackageCount int           `json:"packageCount"`
	Error        string        `json:"error,omitempty"`
	Duration     time.Duration `json:"duration"`
	RequestID    string        `json:"requestId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
