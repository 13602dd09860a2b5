package store

import "github.com/google/uuid"

// IDGenerator produces run IDs.
type IDGenerator interface {
	NewID() string
}

// UUIDv7Generator produces time-sortable UUIDv7 run IDs.
type UUIDv7Generator struct{}

// NewID returns a new hyphenated UUIDv7. Panics only if the system random
// source fails.
func (UUIDv7Generator) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
