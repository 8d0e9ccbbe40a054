// Package importer reads entry batches from JSON or from CSV in the export
// layout, validates every row, and converts them into domain entries.
package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/worklog/internal/export"
)

// ImportSchema is the top-level JSON structure for an entry import.
type ImportSchema struct {
	Entries []EntryImport `json:"entries"`
}

// EntryImport is one row of an import. DurationHours, when set, wins over
// Hours and Minutes.
type EntryImport struct {
	Date          string   `json:"date"`
	Worker        string   `json:"worker"`
	Category      string   `json:"category"`
	Hours         int      `json:"hours,omitempty"`
	Minutes       int      `json:"minutes,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Notes         string   `json:"notes,omitempty"`

	// Line is the 1-based source line for CSV rows, 0 for JSON.
	Line int `json:"-"`
}

// LoadImportSchema reads path as CSV when it ends in .csv and as JSON
// otherwise.
func LoadImportSchema(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSV(f)
	}
	return ReadJSON(f)
}

// ReadJSON decodes an ImportSchema, rejecting unknown fields.
func ReadJSON(r io.Reader) (*ImportSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}

// ReadCSV parses the export layout. The header row must match
// export.Header exactly; Hours and Minutes must be integers.
func ReadCSV(r io.Reader) (*ImportSchema, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(export.Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &ImportSchema{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	for i, h := range export.Header {
		if header[i] != h {
			return nil, fmt.Errorf("csv header column %d: want %q, got %q", i+1, h, header[i])
		}
	}

	schema := &ImportSchema{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		hours, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("line %d: hours %q is not an integer", line, rec[3])
		}
		minutes, err := strconv.Atoi(strings.TrimSpace(rec[4]))
		if err != nil {
			return nil, fmt.Errorf("line %d: minutes %q is not an integer", line, rec[4])
		}
		schema.Entries = append(schema.Entries, EntryImport{
			Date:     rec[0],
			Worker:   rec[1],
			Category: rec[2],
			Hours:    hours,
			Minutes:  minutes,
			Notes:    rec[5],
			Line:     line,
		})
	}
	return schema, nil
}
