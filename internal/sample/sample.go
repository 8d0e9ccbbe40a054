// Package sample produces demonstration entries in the same shape the store
// and analytics engine consume.
package sample

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// DefaultCount is the number of entries a seed run creates.
const DefaultCount = 23

// WindowDays is how far back generated dates reach.
const WindowDays = 14

// Workers is the demonstration roster offered by entry forms.
var Workers = []string{
	"Sarah Mitchell",
	"James Chen",
	"Emma Thompson",
	"Lucas Rodriguez",
	"Olivia Parker",
}

// Categories are the demonstration task types.
var Categories = []string{
	"Posters",
	"Product Images",
	"Badges",
	"Sponsor Logos",
	"Quick Approvals",
}

type hourRange struct{ min, max float64 }

var categoryHours = map[string]hourRange{
	"Posters":         {2, 4},
	"Product Images":  {0.5, 2},
	"Badges":          {0.5, 1},
	"Sponsor Logos":   {1, 2},
	"Quick Approvals": {0.25, 0.5},
}

var notes = []string{
	"Client requested minor color adjustments",
	"Rush order - completed ahead of schedule",
	"Standard production workflow",
	"Multiple revisions required",
	"Final approval pending",
	"Brand guidelines compliance verified",
	"High-resolution export completed",
	"",
	"",
	"",
}

// Generate returns n entries dated within the WindowDays before today
// (inclusive), newest first. Output is fully determined by rng, today and n.
// IDs are "sample-<today>-<i>"; callers that persist into a non-empty store
// may replace them.
func Generate(rng *rand.Rand, today time.Time, n int) []domain.TimeEntry {
	if n <= 0 {
		n = DefaultCount
	}
	entries := make([]domain.TimeEntry, 0, n)
	for i := 0; i < n; i++ {
		category := Categories[rng.IntN(len(Categories))]
		entries = append(entries, domain.TimeEntry{
			ID:            fmt.Sprintf("sample-%s-%d", domain.DateKey(today), i),
			Date:          domain.DateKey(today.AddDate(0, 0, -rng.IntN(WindowDays+1))),
			Worker:        Workers[rng.IntN(len(Workers))],
			Category:      category,
			DurationHours: randomHours(rng, category),
			Notes:         randomNote(rng),
			CreatedAt:     today.Add(time.Duration(i) * time.Millisecond),
		})
	}
	domain.SortNewestFirst(entries)
	return entries
}

func randomHours(rng *rand.Rand, category string) float64 {
	r := categoryHours[category]
	h := r.min + rng.Float64()*(r.max-r.min)
	return math.Round(h*100) / 100
}

// randomNote leaves roughly 30% of entries without a note before picking from
// a list that itself contains blanks.
func randomNote(rng *rand.Rand) string {
	if rng.Float64() < 0.3 {
		return ""
	}
	return notes[rng.IntN(len(notes))]
}
