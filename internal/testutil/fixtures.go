package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/google/uuid"
)

var createdAtCounter atomic.Int64

// FixedNow is the reference clock used across tests: Wednesday 2024-01-10.
var FixedNow = time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

// EntryOption customises a fixture entry.
type EntryOption func(*domain.TimeEntry)

func WithDate(date string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Date = date
	}
}

func WithWorker(w string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Worker = w
	}
}

func WithCategory(c string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Category = c
	}
}

func WithHours(h float64) EntryOption {
	return func(e *domain.TimeEntry) {
		e.DurationHours = h
	}
}

func WithNotes(n string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Notes = n
	}
}

func WithID(id string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.ID = id
	}
}

// NewTestEntry returns a valid entry dated FixedNow. Successive fixtures get
// strictly increasing CreatedAt values so insertion order is observable.
func NewTestEntry(opts ...EntryOption) *domain.TimeEntry {
	n := createdAtCounter.Add(1)
	e := &domain.TimeEntry{
		ID:            uuid.New().String(),
		Date:          domain.DateKey(FixedNow),
		Worker:        "Sarah Mitchell",
		Category:      "Posters",
		DurationHours: 1,
		CreatedAt:     FixedNow.Add(time.Duration(n) * time.Millisecond),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Entry is a terse value fixture for table-driven tests.
func Entry(date, worker, category string, hours float64) domain.TimeEntry {
	return *NewTestEntry(WithDate(date), WithWorker(worker), WithCategory(category), WithHours(hours))
}
