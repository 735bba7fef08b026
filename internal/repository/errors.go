package repository

import "errors"

// Sentinel errors shared by all repositories. Handlers translate these to
// HTTP statuses, so repositories and services never deal in status codes.
var (
	// ErrNotFound covers both missing rows and ownership-scoped lookups
	// that matched nothing.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate signals an idempotent set operation that would add an
	// already-present member.
	ErrDuplicate = errors.New("duplicate record")
)
