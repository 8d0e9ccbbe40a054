package analytics

import (
	"sort"

	"github.com/alexanderramin/worklog/internal/domain"
)

// RankingEntry is one worker row of the ranking.
type RankingEntry struct {
	Label      string  `json:"label"`
	TotalHours float64 `json:"totalHours"`
}

// Ranking groups entries by worker and sorts the groups by descending total.
// Equal totals keep the order in which the workers first appeared.
func Ranking(entries []domain.TimeEntry) []RankingEntry {
	groups := groupBy(entries, byWorker).groups

	// Sort on the unrounded totals so rounding cannot reorder near-ties.
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Hours > groups[j].Hours
	})

	out := make([]RankingEntry, 0, len(groups))
	for _, g := range groups {
		out = append(out, RankingEntry{Label: g.Label, TotalHours: Round2(g.Hours)})
	}
	return out
}
