package repository

import "errors"

// Sentinel errors returned (optionally wrapped) by every store implementation.
// The service translates them into application errors.
var (
	ErrNotFound = errors.New("repository: person not found")
	ErrConflict = errors.New("repository: unique constraint violated")
)
