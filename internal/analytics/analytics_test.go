package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date, worker, category string, hours float64) domain.TimeEntry {
	return domain.TimeEntry{
		ID:            date + "/" + worker + "/" + category,
		Date:          date,
		Worker:        worker,
		Category:      category,
		DurationHours: hours,
	}
}

func scenarioEntries() []domain.TimeEntry {
	return []domain.TimeEntry{
		entry("2024-01-01", "A", "X", 1.5),
		entry("2024-01-01", "B", "X", 0.5),
	}
}

// --- Filter ---

func TestFilter_EmptyReturnsInputUnchanged(t *testing.T) {
	in := scenarioEntries()
	out := Filter{}.Apply(in)
	assert.Equal(t, in, out)
	assert.True(t, Filter{}.IsEmpty())
}

func TestFilter_EmptyCollection(t *testing.T) {
	out := Filter{Worker: "A"}.Apply(nil)
	assert.Empty(t, out)
}

func TestFilter_CriteriaAreANDed(t *testing.T) {
	in := []domain.TimeEntry{
		entry("2024-01-01", "A", "X", 1),
		entry("2024-01-02", "A", "Y", 1),
		entry("2024-01-03", "B", "X", 1),
		entry("2024-01-04", "A", "X", 1),
	}

	out := Filter{Worker: "A", Category: "X"}.Apply(in)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-01-01", out[0].Date)
	assert.Equal(t, "2024-01-04", out[1].Date)

	out = Filter{Worker: "A", Category: "X", DateTo: "2024-01-03"}.Apply(in)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-01", out[0].Date)
}

func TestFilter_DateBoundsInclusive(t *testing.T) {
	in := []domain.TimeEntry{
		entry("2024-01-01", "A", "X", 1),
		entry("2024-01-02", "A", "X", 1),
		entry("2024-01-03", "A", "X", 1),
	}

	out := Filter{DateFrom: "2024-01-02", DateTo: "2024-01-02"}.Apply(in)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-01-02", out[0].Date)

	assert.Len(t, Filter{DateFrom: "2024-01-02"}.Apply(in), 2)
	assert.Len(t, Filter{DateTo: "2024-01-02"}.Apply(in), 2)
}

func TestFilter_MalformedDateComparedLexically(t *testing.T) {
	in := scenarioEntries()
	// "garbage" sorts after every digit-led key, so nothing is on or after it.
	assert.NotPanics(t, func() {
		out := Filter{DateFrom: "garbage"}.Apply(in)
		assert.Empty(t, out)
	})
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	in := []domain.TimeEntry{
		entry("2024-01-05", "A", "X", 1),
		entry("2024-01-01", "A", "X", 2),
		entry("2024-01-03", "A", "X", 3),
	}
	out := Filter{Worker: "A"}.Apply(in)
	require.Len(t, out, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{out[0].DurationHours, out[1].DurationHours, out[2].DurationHours})
}

// --- Aggregation ---

func TestSummarize_EmptyCollection(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	m := Summarize(nil, now, time.Sunday)
	assert.Equal(t, DerivedMetrics{
		WeeklyTotalHours:  0,
		TopCategory:       NoData,
		TopWorker:         NoData,
		MeanHoursPerEntry: 0,
	}, m)
	assert.Equal(t, "<no-data>", m.TopCategory)
}

func TestWeekBounds_SundayStart(t *testing.T) {
	// 2024-01-10 is a Wednesday.
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	from, to := WeekBounds(now, time.Sunday)
	assert.Equal(t, "2024-01-07", from)
	assert.Equal(t, "2024-01-10", to)

	from, _ = WeekBounds(now, time.Monday)
	assert.Equal(t, "2024-01-08", from)

	// On the start day itself the week begins today.
	sunday := time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC)
	from, to = WeekBounds(sunday, time.Sunday)
	assert.Equal(t, "2024-01-07", from)
	assert.Equal(t, "2024-01-07", to)
}

func TestWeekBounds_UsesNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-01-06 20:00 UTC is Sunday 2024-01-07 05:00 in Tokyo.
	now := time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC).In(tokyo)
	from, to := WeekBounds(now, time.Sunday)
	assert.Equal(t, "2024-01-07", from)
	assert.Equal(t, "2024-01-07", to)
}

func TestWeeklyTotal(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		entry("2024-01-06", "A", "X", 5),   // previous Saturday
		entry("2024-01-07", "A", "X", 1.5), // Sunday, week start
		entry("2024-01-10", "B", "Y", 2),   // today
		entry("2024-01-11", "B", "Y", 7),   // future-dated
	}
	assert.InDelta(t, 3.5, WeeklyTotal(entries, now, time.Sunday), 1e-9)
	assert.InDelta(t, 2.0, WeeklyTotal(entries, now, time.Monday), 1e-9)
}

func TestTopCategory_MaxSum(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("2024-01-01", "A", "Badges", 1),
		entry("2024-01-01", "A", "Posters", 3),
		entry("2024-01-02", "B", "Badges", 1.5),
	}
	assert.Equal(t, "Posters", TopCategory(entries))
	assert.Equal(t, "A", TopWorker(entries))
}

func TestTopLabels_TieGoesToFirstAppearance(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("2024-01-01", "Zed", "Posters", 1),
		entry("2024-01-01", "Amy", "Badges", 2),
		entry("2024-01-02", "Zed", "Posters", 1),
	}
	assert.Equal(t, "Posters", TopCategory(entries))
	assert.Equal(t, "Zed", TopWorker(entries))

	// Repeated calls are deterministic.
	for i := 0; i < 20; i++ {
		assert.Equal(t, "Zed", TopWorker(entries))
	}
}

func TestMeanHoursPerEntry(t *testing.T) {
	assert.Equal(t, 0.0, MeanHoursPerEntry(nil))
	assert.Equal(t, 0.0, MeanHoursPerEntry([]domain.TimeEntry{}))

	entries := []domain.TimeEntry{
		entry("2024-01-01", "A", "X", 1),
		entry("2024-01-01", "A", "X", 2),
		entry("2024-01-01", "A", "X", 4.5),
	}
	assert.InDelta(t, TotalHours(entries)/3, MeanHoursPerEntry(entries), 1e-12)
	assert.InDelta(t, 2.5, MeanHoursPerEntry(entries), 1e-12)
}

// --- Distribution ---

func TestDistribution_Scenario(t *testing.T) {
	got := Distribution(scenarioEntries())
	assert.Equal(t, []DistributionEntry{{Label: "X", TotalHours: 2.0, SharePercent: 100}}, got)
}

func TestDistribution_EmptyAndZeroTotal(t *testing.T) {
	assert.Empty(t, Distribution(nil))
	assert.Empty(t, Distribution([]domain.TimeEntry{entry("2024-01-01", "A", "X", 0)}))
}

func TestDistribution_SharesSumTo100(t *testing.T) {
	collections := [][]domain.TimeEntry{
		{entry("d", "A", "X", 1), entry("d", "A", "Y", 1), entry("d", "A", "Z", 1)},
		{entry("d", "A", "X", 0.1), entry("d", "A", "Y", 0.2), entry("d", "A", "Z", 0.7), entry("d", "A", "W", 3.33)},
		{entry("d", "A", "X", 2.5)},
	}
	for _, entries := range collections {
		dist := Distribution(entries)
		var sum float64
		for _, d := range dist {
			assert.GreaterOrEqual(t, d.SharePercent, 0.0)
			assert.LessOrEqual(t, d.SharePercent, 100.0)
			sum += d.SharePercent
		}
		assert.InDelta(t, 100, sum, 0.01*float64(len(dist)))
	}
}

func TestDistribution_FirstAppearanceOrderIsStable(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("d", "A", "Posters", 1),
		entry("d", "A", "Badges", 5),
		entry("d", "A", "Logos", 2),
		entry("d", "A", "Posters", 1),
	}
	first := Distribution(entries)
	require.Len(t, first, 3)
	assert.Equal(t, "Posters", first[0].Label)
	assert.Equal(t, "Badges", first[1].Label)
	assert.Equal(t, "Logos", first[2].Label)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Distribution(entries))
	}
}

// --- Ranking ---

func TestRanking_Scenario(t *testing.T) {
	got := Ranking(scenarioEntries())
	assert.Equal(t, []RankingEntry{{Label: "A", TotalHours: 1.5}, {Label: "B", TotalHours: 0.5}}, got)
}

func TestRanking_SortedDescendingWithStableTies(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("d", "Cat", "X", 1),
		entry("d", "Bob", "X", 3),
		entry("d", "Ann", "X", 1),
		entry("d", "Dan", "X", 2),
		entry("d", "Cat", "X", 1),
	}
	got := Ranking(entries)
	require.Len(t, got, 4)
	labels := []string{got[0].Label, got[1].Label, got[2].Label, got[3].Label}
	// Bob=3, Cat=2 and Dan=2 tie (Cat seen first), Ann=1.
	assert.Equal(t, []string{"Bob", "Cat", "Dan", "Ann"}, labels)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].TotalHours, got[i].TotalHours)
	}
}

func TestRanking_Empty(t *testing.T) {
	assert.Empty(t, Ranking(nil))
}

func TestRanking_RoundsAtEmission(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("d", "A", "X", 0.333),
		entry("d", "A", "X", 0.333),
		entry("d", "A", "X", 0.333),
	}
	got := Ranking(entries)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].TotalHours)
}

// --- Daily series ---

func TestDailySeries_Scenario(t *testing.T) {
	entries := []domain.TimeEntry{entry("2024-01-09", "A", "X", 2)}
	got, err := DailySeries(entries, "2024-01-10", 3)
	require.NoError(t, err)
	assert.Equal(t, []DailyBucket{
		{Day: "2024-01-08", TotalHours: 0},
		{Day: "2024-01-09", TotalHours: 2},
		{Day: "2024-01-10", TotalHours: 0},
	}, got)
}

func TestDailySeries_AlwaysNBuckets(t *testing.T) {
	for _, n := range []int{1, 7, 14, 31} {
		got, err := DailySeries(nil, "2024-03-01", n)
		require.NoError(t, err)
		require.Len(t, got, n)
		assert.Equal(t, "2024-03-01", got[n-1].Day)
		for _, b := range got {
			assert.Equal(t, 0.0, b.TotalHours)
		}
	}
}

func TestDailySeries_ContiguousAcrossMonthAndLeapDay(t *testing.T) {
	got, err := DailySeries(nil, "2024-03-02", 4)
	require.NoError(t, err)
	days := make([]string, len(got))
	for i, b := range got {
		days[i] = b.Day
	}
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, days)
}

func TestDailySeries_DefaultWindow(t *testing.T) {
	got, err := DailySeries(nil, "2024-01-14", 0)
	require.NoError(t, err)
	require.Len(t, got, DefaultSeriesDays)
	assert.Equal(t, "2024-01-01", got[0].Day)
}

func TestDailySeries_IgnoresOutOfWindowAndSumsSameDay(t *testing.T) {
	entries := []domain.TimeEntry{
		entry("2024-01-07", "A", "X", 9), // before window
		entry("2024-01-08", "A", "X", 0.1),
		entry("2024-01-08", "B", "Y", 0.2),
		entry("2024-01-11", "A", "X", 9), // after today
	}
	got, err := DailySeries(entries, "2024-01-10", 3)
	require.NoError(t, err)
	assert.Equal(t, 0.3, got[0].TotalHours)
	assert.Equal(t, 0.0, got[1].TotalHours)
	assert.Equal(t, 0.0, got[2].TotalHours)
}

func TestDailySeries_MalformedToday(t *testing.T) {
	_, err := DailySeries(nil, "2024-01-10T10:00:00Z", 3)
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235000001))
	assert.Equal(t, 0.0, Round2(0.004))
}
