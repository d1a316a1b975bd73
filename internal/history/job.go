package history

import (
	"checkups/pkg/domain"
	"time"

	"github.com/riverqueue/river"
)

const (
	recordMaxAttempts = 5
	pruneMaxAttempts  = 3
)

// RecordSearchArgs persists one search record.
type RecordSearchArgs struct {
	Record domain.SearchRecord `json:"record"`
}

func (RecordSearchArgs) Kind() string { return "RecordSearch" }

func (RecordSearchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: recordMaxAttempts}
}

// PruneHistoryArgs deletes records older than Retention.
type PruneHistoryArgs struct {
	Retention time.Duration `json:"retention"`
}

func (PruneHistoryArgs) Kind() string { return "PruneHistory" }

func (PruneHistoryArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: pruneMaxAttempts,
		// a single pending prune is enough
		UniqueOpts: river.UniqueOpts{ByArgs: true, ByPeriod: time.Hour},
	}
}
