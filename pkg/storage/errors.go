package storage

import "errors"

// Errors returned by storage implementations when transactions are misused.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a non-transactional handle.
	ErrNotInTx = errors.New("not in tx")
)
