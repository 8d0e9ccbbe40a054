package importer

import (
	"strings"

	"github.com/alexanderramin/worklog/internal/domain"
)

// Convert transforms a validated ImportSchema into entries ready for
// persistence, in file order. IDs and creation times are left for the
// service to assign. Call ValidateImportSchema first.
func Convert(schema *ImportSchema) []domain.TimeEntry {
	entries := make([]domain.TimeEntry, 0, len(schema.Entries))
	for _, in := range schema.Entries {
		hours := domain.FromHoursMinutes(in.Hours, in.Minutes)
		if in.DurationHours != nil {
			hours = *in.DurationHours
		}
		entries = append(entries, domain.TimeEntry{
			Date:          strings.TrimSpace(in.Date),
			Worker:        strings.TrimSpace(in.Worker),
			Category:      strings.TrimSpace(in.Category),
			DurationHours: hours,
			Notes:         in.Notes,
		})
	}
	return entries
}
