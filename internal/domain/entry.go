package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// DateLayout is the calendar-date key format. Lexical order of keys in this
// layout equals chronological order.
const DateLayout = "2006-01-02"

// ErrInvalidEntry is returned when an entry fails boundary validation.
var ErrInvalidEntry = errors.New("invalid time entry")

// TimeEntry is one recorded unit of work. Values are treated as immutable
// once created; an edit is a delete followed by a new Log.
type TimeEntry struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	Worker        string    `json:"worker"`
	Category      string    `json:"category"`
	DurationHours float64   `json:"durationHours"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DurationMinutes is derived from DurationHours and is never stored.
func (e TimeEntry) DurationMinutes() float64 {
	return e.DurationHours * 60
}

// Validate checks the invariants the analytics engine relies on.
func (e TimeEntry) Validate() error {
	if strings.TrimSpace(e.Worker) == "" {
		return fmt.Errorf("%w: worker is required", ErrInvalidEntry)
	}
	if strings.TrimSpace(e.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidEntry)
	}
	if math.IsNaN(e.DurationHours) || math.IsInf(e.DurationHours, 0) || e.DurationHours < 0 {
		return fmt.Errorf("%w: duration %v must be a non-negative number of hours", ErrInvalidEntry, e.DurationHours)
	}
	if !IsDateKey(e.Date) {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidEntry, e.Date)
	}
	return nil
}

// IsDateKey reports whether s is a well-formed YYYY-MM-DD calendar date.
func IsDateKey(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// DateKey formats t as a calendar-date key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// FromHoursMinutes converts the whole-hour and minute fields of an entry form
// into canonical hours.
func FromHoursMinutes(hours, minutes int) float64 {
	return float64(hours*60+minutes) / 60
}

// SortNewestFirst orders entries by date descending. Entries on the same day
// keep the most recently created first, then fall back to ID.
func SortNewestFirst(entries []TimeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}
