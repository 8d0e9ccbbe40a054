package analytics

import (
	"math"

	"github.com/alexanderramin/worklog/internal/domain"
)

// NoData is returned by the top-label reductions for an empty collection.
const NoData = "<no-data>"

// labelTotal is one group of an orderedTotals.
type labelTotal struct {
	Label string
	Hours float64
}

// orderedTotals accumulates hours per label and remembers the order in which
// labels were first seen. Go map iteration order is random, so ties are
// resolved against this order rather than the map.
type orderedTotals struct {
	index  map[string]int
	groups []labelTotal
}

func newOrderedTotals() *orderedTotals {
	return &orderedTotals{index: make(map[string]int)}
}

func (o *orderedTotals) add(label string, hours float64) {
	i, ok := o.index[label]
	if !ok {
		i = len(o.groups)
		o.index[label] = i
		o.groups = append(o.groups, labelTotal{Label: label})
	}
	o.groups[i].Hours += hours
}

// grand is the sum over all groups.
func (o *orderedTotals) grand() float64 {
	var total float64
	for _, g := range o.groups {
		total += g.Hours
	}
	return total
}

// top returns the label with the largest total, the earliest-seen label
// winning ties, or NoData when empty.
func (o *orderedTotals) top() string {
	if len(o.groups) == 0 {
		return NoData
	}
	best := o.groups[0]
	for _, g := range o.groups[1:] {
		if g.Hours > best.Hours {
			best = g
		}
	}
	return best.Label
}

// groupBy sums DurationHours per key in first-appearance order.
func groupBy(entries []domain.TimeEntry, key func(domain.TimeEntry) string) *orderedTotals {
	totals := newOrderedTotals()
	for _, e := range entries {
		totals.add(key(e), e.DurationHours)
	}
	return totals
}

func byWorker(e domain.TimeEntry) string   { return e.Worker }
func byCategory(e domain.TimeEntry) string { return e.Category }

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
