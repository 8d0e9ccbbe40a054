package analytics

import "github.com/alexanderramin/worklog/internal/domain"

// DistributionEntry is one category slice of the hours distribution.
type DistributionEntry struct {
	Label        string  `json:"label"`
	TotalHours   float64 `json:"totalHours"`
	SharePercent float64 `json:"sharePercent"`
}

// Distribution groups entries by category and computes each group's share of
// the grand total. Groups appear in first-appearance order. A zero grand total
// yields an empty distribution. Totals and shares are rounded to two decimals
// only when emitted.
func Distribution(entries []domain.TimeEntry) []DistributionEntry {
	totals := groupBy(entries, byCategory)
	grand := totals.grand()
	if grand == 0 {
		return []DistributionEntry{}
	}

	out := make([]DistributionEntry, 0, len(totals.groups))
	for _, g := range totals.groups {
		out = append(out, DistributionEntry{
			Label:        g.Label,
			TotalHours:   Round2(g.Hours),
			SharePercent: Round2(100 * g.Hours / grand),
		})
	}
	return out
}
