package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/service"
)

const (
	shareBarWidth  = 20
	seriesBarWidth = 24
)

// FormatMetrics renders the four summary cards as aligned label/value lines.
func FormatMetrics(m analytics.DerivedMetrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("This week     "), StyleGreen.Render(fmt.Sprintf("%.2fh", analytics.Round2(m.WeeklyTotalHours))))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Top category  "), labelOrDash(m.TopCategory))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Top worker    "), labelOrDash(m.TopWorker))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Avg per entry "), fmt.Sprintf("%.2fh", analytics.Round2(m.MeanHoursPerEntry)))
	return b.String()
}

// FormatDistribution renders each category's share as a colored bar.
func FormatDistribution(dist []analytics.DistributionEntry) string {
	if len(dist) == 0 {
		return Dim("No hours logged.") + "\n"
	}
	headers := []string{"CATEGORY", "HOURS", "SHARE"}
	rows := make([][]string, 0, len(dist))
	for i, d := range dist {
		style := SliceStyle(i)
		rows = append(rows, []string{
			style.Render(d.Label),
			fmt.Sprintf("%.2f", d.TotalHours),
			RenderShareBar(d.SharePercent, shareBarWidth, style),
		})
	}
	return RenderAlignedTable(headers, rows, []Align{AlignLeft, AlignRight})
}

// FormatRanking renders workers by descending hours with their rank.
func FormatRanking(ranking []analytics.RankingEntry) string {
	if len(ranking) == 0 {
		return Dim("No hours logged.") + "\n"
	}
	headers := []string{"#", "WORKER", "HOURS"}
	rows := make([][]string, 0, len(ranking))
	for i, r := range ranking {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			Bold(r.Label),
			fmt.Sprintf("%.2f", r.TotalHours),
		})
	}
	return RenderAlignedTable(headers, rows, []Align{AlignRight, AlignLeft, AlignRight})
}

// FormatSeries renders one bar per day plus a sparkline of the whole window.
func FormatSeries(series []analytics.DailyBucket) string {
	var peak float64
	values := make([]float64, len(series))
	for i, d := range series {
		values[i] = d.TotalHours
		peak = max(peak, d.TotalHours)
	}

	var b strings.Builder
	for _, d := range series {
		hours := Dim("    -")
		if d.TotalHours > 0 {
			hours = fmt.Sprintf("%5.2f", analytics.Round2(d.TotalHours))
		}
		fmt.Fprintf(&b, "%s  %s %s\n", Dim(d.Day), RenderHoursBar(d.TotalHours, peak, seriesBarWidth, StyleBlue), hours)
	}
	if len(series) > 0 {
		fmt.Fprintf(&b, "\n%s  %s\n", Dim("trend"), RenderSparkline(values))
	}
	return b.String()
}

// FormatDashboard renders every section of a DashboardResponse in one box.
func FormatDashboard(resp *service.DashboardResponse) string {
	var b strings.Builder

	scope := fmt.Sprintf("%d entries", resp.EntryCount)
	if resp.FilteredCount != resp.EntryCount {
		scope = fmt.Sprintf("%d of %d entries", resp.FilteredCount, resp.EntryCount)
	}
	b.WriteString(Dim(fmt.Sprintf("%s · week from %s · today %s", scope, resp.WeekFrom, resp.Today)) + "\n\n")

	b.WriteString(FormatMetrics(resp.Metrics))
	b.WriteString("\n" + Header("Hours by category") + "\n")
	b.WriteString(FormatDistribution(resp.Distribution))
	b.WriteString("\n" + Header("Workers") + "\n")
	b.WriteString(FormatRanking(resp.Ranking))
	b.WriteString("\n" + Header(fmt.Sprintf("Last %d days", len(resp.Series))) + "\n")
	b.WriteString(FormatSeries(resp.Series))

	return RenderBox("Dashboard", b.String())
}

func labelOrDash(label string) string {
	if label == analytics.NoData {
		return Dim("--")
	}
	return Bold(label)
}
