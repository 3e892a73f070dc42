// Package uuid generates message identifiers using github.com/google/uuid.
package uuid

import "github.com/google/uuid"

// NewID returns a time-ordered (version 7) UUID string. If the random source
// fails it falls back to a random version 4 UUID, which panics only if that
// source fails too.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
