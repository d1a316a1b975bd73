// Package upstream defines the abstraction the search proxy uses to answer
// queries: something that turns a query into health-checkup packages, either
// a remote knowledge-base gateway or a local retrieve-and-generate engine.
package upstream

import (
	"checkups/pkg/domain"
	"context"
)

// Client answers search queries.
//
// A nil error with a failed domain.SearchResult means the upstream answered
// and reported a failure of its own; a non-nil error means the upstream could
// not be reached or answered unusably. Errors carry serrors kinds so callers
// can choose a status code.
//
//go:generate mockgen -package mockupstream -source=interface.go -destination=mock/mockupstream.go *
type Client interface {
	Search(ctx context.Context, query domain.Query) (domain.SearchResult, error)
}
