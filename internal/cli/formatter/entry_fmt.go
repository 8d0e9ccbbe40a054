package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/domain"
)

const notesWidth = 32

// FormatEntryTable renders entries newest first, as given, with a
// "Showing X of Y entries" footer.
func FormatEntryTable(entries []domain.TimeEntry, total int, today string) string {
	if len(entries) == 0 {
		if total == 0 {
			return Dim("No entries logged yet.") + "\n"
		}
		return Dim(fmt.Sprintf("No entries match the current filters (%d total).", total)) + "\n"
	}

	headers := []string{"ID", "DATE", "WORKER", "CATEGORY", "TIME", "NOTES"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		notes := Dim("--")
		if e.Notes != "" {
			notes = Truncate(strings.ReplaceAll(e.Notes, "\n", " "), notesWidth)
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			RelativeDay(e.Date, today),
			Bold(e.Worker),
			StylePurple.Render(e.Category),
			FormatHours(e.DurationHours),
			notes,
		})
	}

	var b strings.Builder
	b.WriteString(RenderAlignedTable(headers, rows, []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Showing %d of %d entries", len(entries), total)) + "\n")
	return b.String()
}

// FormatEntry renders one entry's full detail.
func FormatEntry(e *domain.TimeEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID:      "), e.ID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Date:    "), e.Date)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Worker:  "), Bold(e.Worker))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Category:"), StylePurple.Render(e.Category))
	fmt.Fprintf(&b, "%s  %s (%.2fh)\n", Dim("Time:    "), FormatHours(e.DurationHours), e.DurationHours)
	if e.Notes != "" {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Notes:   "), e.Notes)
	}
	return b.String()
}
