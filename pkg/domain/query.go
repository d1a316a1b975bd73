package domain

import (
	"errors"
	"strings"
)

// ErrEmptyQuery is returned by NewQuery for empty or whitespace-only input.
var ErrEmptyQuery = errors.New("empty query")

// Query is a trimmed, non-empty free-text search string.
type Query string

// NewQuery trims raw and rejects it when nothing is left.
func NewQuery(raw string) (Query, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrEmptyQuery
	}

	return Query(q), nil
}

func (q Query) String() string { return string(q) }
