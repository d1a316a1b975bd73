package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrInvalidLimit is returned for a zero page size.
	ErrInvalidLimit = errors.New("limit must be positive")
)
