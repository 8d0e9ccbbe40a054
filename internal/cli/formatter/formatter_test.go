package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "1h 5m", FormatMinutes(65))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1h 30m", FormatHours(1.5))
	assert.Equal(t, "15m", FormatHours(0.25))
	assert.Equal(t, "2h", FormatHours(1.999))
	assert.Equal(t, "0m", FormatHours(0))
}

func TestRelativeDay(t *testing.T) {
	tests := []struct {
		date, want string
	}{
		{"2024-01-10", "Today"},
		{"2024-01-09", "Yesterday"},
		{"2024-01-11", "Tomorrow"},
		{"2024-01-07", "3d ago"},
		{"2023-12-25", "Dec 25, 2023"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDay(tt.date, "2024-01-10"))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "…", Truncate("abc", 1))
}

func TestRenderAlignedTable_RightAlignsNumbers(t *testing.T) {
	out := stripANSI(RenderAlignedTable(
		[]string{"NAME", "HOURS"},
		[][]string{{"a", "1.50"}, {"bbbb", "12.00"}},
		[]Align{AlignLeft, AlignRight},
	))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NAME  HOURS", lines[0])
	assert.Equal(t, "a      1.50", lines[2])
	assert.Equal(t, "bbbb  12.00", lines[3])
}

func TestRenderShareBar(t *testing.T) {
	out := stripANSI(RenderShareBar(50, 10, StyleBlue))
	assert.Equal(t, "[█████░░░░░]  50.0%", out)

	out = stripANSI(RenderShareBar(150, 4, StyleBlue))
	assert.Equal(t, "[████] 100.0%", out)
}

func TestRenderSparkline(t *testing.T) {
	out := stripANSI(RenderSparkline([]float64{0, 1, 2, 4}))
	assert.Equal(t, "▁▂▄█", out)
	assert.Equal(t, "", RenderSparkline(nil))
}

func TestFormatEntryTable(t *testing.T) {
	entries := []domain.TimeEntry{
		{ID: "0123456789abcdef", Date: "2024-01-10", Worker: "James Chen", Category: "Badges", DurationHours: 0.75, Notes: "line one\nline two"},
		{ID: "fedcba9876543210", Date: "2024-01-02", Worker: "Emma Thompson", Category: "Posters", DurationHours: 3.5},
	}
	out := stripANSI(FormatEntryTable(entries, 5, "2024-01-10"))

	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Jan 2, 2024")
	assert.Contains(t, out, "3h 30m")
	assert.Contains(t, out, "line one line two")
	assert.Contains(t, out, "Showing 2 of 5 entries")
}

func TestFormatEntryTable_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatEntryTable(nil, 0, "2024-01-10")), "No entries logged yet.")
	assert.Contains(t, stripANSI(FormatEntryTable(nil, 3, "2024-01-10")), "(3 total)")
}

func TestFormatDashboard(t *testing.T) {
	resp := &service.DashboardResponse{
		Today:    "2024-01-10",
		WeekFrom: "2024-01-07",
		Metrics: analytics.DerivedMetrics{
			WeeklyTotalHours: 4.5, TopCategory: "Posters", TopWorker: "A", MeanHoursPerEntry: 1.625,
		},
		Distribution: []analytics.DistributionEntry{
			{Label: "Posters", TotalHours: 4, SharePercent: 61.54},
			{Label: "Badges", TotalHours: 2.5, SharePercent: 38.46},
		},
		Ranking: []analytics.RankingEntry{{Label: "A", TotalHours: 5}, {Label: "B", TotalHours: 1.5}},
		Series: []analytics.DailyBucket{
			{Day: "2024-01-09", TotalHours: 3},
			{Day: "2024-01-10", TotalHours: 0},
		},
		EntryCount:    4,
		FilteredCount: 4,
	}
	out := stripANSI(FormatDashboard(resp))

	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "4 entries · week from 2024-01-07 · today 2024-01-10")
	assert.Contains(t, out, "4.50h")
	assert.Contains(t, out, "1.63h")
	assert.Contains(t, out, "61.5%")
	assert.Contains(t, out, "HOURS BY CATEGORY")
	assert.Contains(t, out, "LAST 2 DAYS")
	assert.Contains(t, out, "2024-01-09")
}

func TestFormatMetrics_NoData(t *testing.T) {
	out := stripANSI(FormatMetrics(analytics.DerivedMetrics{TopCategory: analytics.NoData, TopWorker: analytics.NoData}))
	assert.NotContains(t, out, analytics.NoData)
	assert.Contains(t, out, "0.00h")
}
