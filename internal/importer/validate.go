package importer

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/worklog/internal/domain"
)

// ValidateImportSchema checks every row before conversion and returns all
// problems found, each prefixed with the row's position.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	if len(schema.Entries) == 0 {
		return []error{fmt.Errorf("import contains no entries")}
	}
	for i := range schema.Entries {
		errs = append(errs, validateEntry(&schema.Entries[i], i)...)
	}
	return errs
}

func validateEntry(e *EntryImport, idx int) []error {
	where := fmt.Sprintf("entries[%d]", idx)
	if e.Line > 0 {
		where = fmt.Sprintf("line %d", e.Line)
	}

	var errs []error
	if !domain.IsDateKey(strings.TrimSpace(e.Date)) {
		errs = append(errs, fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD)", where, e.Date))
	}
	if strings.TrimSpace(e.Worker) == "" {
		errs = append(errs, fmt.Errorf("%s: worker is required", where))
	}
	if strings.TrimSpace(e.Category) == "" {
		errs = append(errs, fmt.Errorf("%s: category is required", where))
	}
	if e.DurationHours != nil {
		if d := *e.DurationHours; d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			errs = append(errs, fmt.Errorf("%s: duration_hours must be a non-negative number", where))
		}
		return errs
	}
	if e.Hours < 0 {
		errs = append(errs, fmt.Errorf("%s: hours must be >= 0", where))
	}
	if e.Minutes < 0 || e.Minutes > 59 {
		errs = append(errs, fmt.Errorf("%s: minutes must be between 0 and 59", where))
	}
	return errs
}
