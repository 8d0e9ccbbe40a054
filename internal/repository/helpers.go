package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup by ID matches no row.
var ErrNotFound = errors.New("not found")

// createdAtLayout is fixed width so stored values sort lexically in time
// order, with nanoseconds so entries logged in quick succession still differ.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatCreatedAt converts a creation time to its stored UTC string form.
func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}

// parseCreatedAt is the inverse of formatCreatedAt.
func parseCreatedAt(s string) (time.Time, error) {
	return time.Parse(createdAtLayout, s)
}
