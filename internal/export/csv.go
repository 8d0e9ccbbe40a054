// Package export renders time entries into the CSV exchange format.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/alexanderramin/worklog/internal/domain"
)

// DefaultFileName is suggested to callers that write the export to disk.
const DefaultFileName = "worklog-export.csv"

// ErrNothingToExport is returned instead of writing a header-only file.
var ErrNothingToExport = errors.New("no data to export")

// Header is the fixed first row of every export.
var Header = []string{"Date", "Worker", "Category", "Hours", "Minutes", "Notes"}

// SplitHours breaks a duration into whole hours and remaining minutes. Hours
// are floored and the remainder is rounded to the nearest minute; a remainder
// that rounds up to 60 is carried into the hour so minutes stay in [0, 59].
func SplitHours(durationHours float64) (hours, minutes int) {
	whole := math.Floor(durationHours)
	hours = int(whole)
	minutes = int(math.Round((durationHours - whole) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return hours, minutes
}

// WriteCSV writes the header and one row per entry in input order. Fields are
// quoted per RFC 4180 when they contain a comma, quote or line break. An empty
// collection returns ErrNothingToExport and writes nothing.
func WriteCSV(w io.Writer, entries []domain.TimeEntry) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(Row(e)); err != nil {
			return fmt.Errorf("writing csv row for entry %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// Row renders one entry as export fields.
func Row(e domain.TimeEntry) []string {
	h, m := SplitHours(e.DurationHours)
	return []string{
		e.Date,
		e.Worker,
		e.Category,
		strconv.Itoa(h),
		strconv.Itoa(m),
		e.Notes,
	}
}
