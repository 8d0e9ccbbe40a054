package analytics

import (
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// DefaultSeriesDays is the trailing window length of the daily chart.
const DefaultSeriesDays = 14

// MaxSeriesDays bounds the window callers may request.
const MaxSeriesDays = 366

// DailyBucket is the total for one calendar day of the trailing window.
type DailyBucket struct {
	Day        string  `json:"day"`
	TotalHours float64 `json:"totalHours"`
}

// DailySeries returns exactly days buckets, one per calendar day from
// today-(days-1) through today in chronological order. Days without entries
// are present with a zero total; entries outside the window are ignored.
// A non-positive days uses DefaultSeriesDays. The only error is a today that
// is not a YYYY-MM-DD key.
func DailySeries(entries []domain.TimeEntry, today string, days int) ([]DailyBucket, error) {
	end, err := time.Parse(domain.DateLayout, today)
	if err != nil {
		return nil, fmt.Errorf("parsing series end date %q: %w", today, err)
	}
	if days <= 0 {
		days = DefaultSeriesDays
	}

	start := end.AddDate(0, 0, -(days - 1))
	sums := make([]float64, days)
	slot := make(map[string]int, days)
	keys := make([]string, days)
	for i := 0; i < days; i++ {
		keys[i] = domain.DateKey(start.AddDate(0, 0, i))
		slot[keys[i]] = i
	}

	for _, e := range entries {
		if i, ok := slot[e.Date]; ok {
			sums[i] += e.DurationHours
		}
	}

	buckets := make([]DailyBucket, days)
	for i := range buckets {
		buckets[i] = DailyBucket{Day: keys[i], TotalHours: Round2(sums[i])}
	}
	return buckets, nil
}
