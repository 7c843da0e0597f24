package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when a conditional update had no effect
	// because the entity was not in the expected prior state. Callers
	// classify it into a specific conflict; it is never retried here.
	ErrConflict = errors.New("conditional update had no effect")
)
