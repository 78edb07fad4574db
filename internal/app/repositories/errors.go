package repositories

import "errors"

// Shared repository errors
var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique index rejects a write.
	ErrDuplicate = errors.New("record with the same key already exists")
	// ErrInvalidReference is returned when a foreign key constraint rejects a write.
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrHasDependents is returned by a restricted delete when other rows reference the target.
	ErrHasDependents = errors.New("record is referenced by other records")
)
