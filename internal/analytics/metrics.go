package analytics

import (
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
)

// DerivedMetrics is the scalar summary shown at the top of the dashboard.
// It is recomputed from scratch on every call.
type DerivedMetrics struct {
	WeeklyTotalHours  float64 `json:"weeklyTotalHours"`
	TopCategory       string  `json:"topCategory"`
	TopWorker         string  `json:"topWorker"`
	MeanHoursPerEntry float64 `json:"meanHoursPerEntry"`
}

// Summarize computes all four metrics. The weekly total depends on now as well
// as on entries; see WeeklyTotal.
func Summarize(entries []domain.TimeEntry, now time.Time, weekStart time.Weekday) DerivedMetrics {
	return DerivedMetrics{
		WeeklyTotalHours:  WeeklyTotal(entries, now, weekStart),
		TopCategory:       TopCategory(entries),
		TopWorker:         TopWorker(entries),
		MeanHoursPerEntry: MeanHoursPerEntry(entries),
	}
}

// WeekBounds returns the inclusive date keys of the week containing now: from
// the most recent weekStart day on or before now, through now itself. Both
// keys are calendar dates in now's location.
func WeekBounds(now time.Time, weekStart time.Weekday) (from, to string) {
	offset := (int(now.Weekday()) - int(weekStart) + 7) % 7
	return domain.DateKey(now.AddDate(0, 0, -offset)), domain.DateKey(now)
}

// WeeklyTotal sums hours of entries dated within the current week. The result
// is a function of both the collection and the injected now; callers read the
// wall clock at the outermost boundary and pass it in.
func WeeklyTotal(entries []domain.TimeEntry, now time.Time, weekStart time.Weekday) float64 {
	from, to := WeekBounds(now, weekStart)
	var total float64
	for _, e := range entries {
		if e.Date >= from && e.Date <= to {
			total += e.DurationHours
		}
	}
	return total
}

// TopCategory returns the category with the most hours, or NoData.
func TopCategory(entries []domain.TimeEntry) string {
	return groupBy(entries, byCategory).top()
}

// TopWorker returns the worker with the most hours, or NoData.
func TopWorker(entries []domain.TimeEntry) string {
	return groupBy(entries, byWorker).top()
}

// TotalHours sums DurationHours over entries.
func TotalHours(entries []domain.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.DurationHours
	}
	return total
}

// MeanHoursPerEntry is TotalHours / len(entries), defined as 0 when empty.
func MeanHoursPerEntry(entries []domain.TimeEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	return TotalHours(entries) / float64(len(entries))
}
