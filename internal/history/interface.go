// Package history records proxied searches asynchronously and reads them
// back. Recording enqueues a River job so a slow or unavailable database
// never delays a search response.
package history

import (
	"checkups/pkg/domain"
	"context"
)

//go:generate mockgen -package mockhistory -source=interface.go -destination=mock/mockhistory.go *
type History interface {
	// Record enqueues rec for persistence.
	Record(ctx context.Context, rec domain.SearchRecord) error
	// Recent returns the newest records. A zero limit means DefaultLimit and
	// limits above MaxLimit are capped.
	Recent(ctx context.Context, limit uint) ([]domain.SearchRecord, error)
}
