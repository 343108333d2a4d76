package utils

import "github.com/google/uuid"

// NewTimeOrderedID returns a UUIDv7, whose string form sorts by creation
// time. It falls back to a random UUIDv4 if the clock source fails.
func NewTimeOrderedID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
