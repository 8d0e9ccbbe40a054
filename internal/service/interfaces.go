package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/domain"
)

// EntryList is a filtered view of the store together with the unfiltered
// total, so callers can show "X of Y".
type EntryList struct {
	Entries []domain.TimeEntry
	Total   int
}

type EntryService interface {
	Log(ctx context.Context, e *domain.TimeEntry) error
	// Import persists a batch atomically. Every entry gets a fresh ID.
	Import(ctx context.Context, entries []domain.TimeEntry) (int, error)
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context, filter analytics.Filter) (*EntryList, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int, error)
	Workers(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
}

// DashboardRequest selects the view computed by DashboardService. Zero values
// fall back to the service defaults.
type DashboardRequest struct {
	Now *time.Time
	// Today pins the calendar day (YYYY-MM-DD) the dashboard is computed
	// for, overriding Now.
	Today      string
	WeekStart  *time.Weekday
	SeriesDays int
	// Filter scopes every aggregate. Empty means the whole store.
	Filter analytics.Filter
}

type DashboardResponse struct {
	GeneratedAt   time.Time                     `json:"generatedAt"`
	Today         string                        `json:"today"`
	WeekFrom      string                        `json:"weekFrom"`
	Metrics       analytics.DerivedMetrics      `json:"metrics"`
	TotalHours    float64                       `json:"totalHours"`
	Distribution  []analytics.DistributionEntry `json:"distribution"`
	Ranking       []analytics.RankingEntry      `json:"ranking"`
	Series        []analytics.DailyBucket       `json:"series"`
	EntryCount    int                           `json:"entryCount"`
	FilteredCount int                           `json:"filteredCount"`
}

type DashboardService interface {
	Dashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type ExportService interface {
	// Export writes the filtered entries as CSV and returns the row count.
	// It returns export.ErrNothingToExport without writing when none match.
	Export(ctx context.Context, w io.Writer, filter analytics.Filter) (int, error)
}
