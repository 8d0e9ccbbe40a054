// Package analytics derives summary metrics and chart-ready series from a
// collection of time entries. Every function here is a pure function of its
// arguments: nothing reads the clock, touches storage or mutates its input.
package analytics

import "github.com/alexanderramin/worklog/internal/domain"

// Predicate reports whether an entry should be kept.
type Predicate func(domain.TimeEntry) bool

// Filter holds the optional criteria of the entry table and CSV export.
// An empty field imposes no constraint. Date bounds are inclusive and compared
// lexically as YYYY-MM-DD keys; malformed bounds are not rejected.
type Filter struct {
	Worker   string
	Category string
	DateFrom string
	DateTo   string
}

// IsEmpty reports whether no criterion is set.
func (f Filter) IsEmpty() bool {
	return f.Worker == "" && f.Category == "" && f.DateFrom == "" && f.DateTo == ""
}

// Predicate returns the logical AND of the set criteria.
func (f Filter) Predicate() Predicate {
	return func(e domain.TimeEntry) bool {
		if f.Worker != "" && e.Worker != f.Worker {
			return false
		}
		if f.Category != "" && e.Category != f.Category {
			return false
		}
		if f.DateFrom != "" && e.Date < f.DateFrom {
			return false
		}
		if f.DateTo != "" && e.Date > f.DateTo {
			return false
		}
		return true
	}
}

// Apply returns the entries matching f, preserving input order.
// With no criteria set the input slice itself is returned.
func (f Filter) Apply(entries []domain.TimeEntry) []domain.TimeEntry {
	if f.IsEmpty() {
		return entries
	}
	return Select(entries, f.Predicate())
}

// Select returns the entries for which keep is true, in input order.
func Select(entries []domain.TimeEntry, keep Predicate) []domain.TimeEntry {
	out := make([]domain.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
