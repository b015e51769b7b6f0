package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDuplicateKey is returned when an insert would reuse an existing key.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")
)
