package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/config"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/export"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/gorilla/mux"
)

// entryRequest is the POST /entries body. DurationHours wins when present;
// otherwise Hours and Minutes are combined.
type entryRequest struct {
	Date          string   `json:"date"`
	Worker        string   `json:"worker"`
	Category      string   `json:"category"`
	DurationHours *float64 `json:"durationHours,omitempty"`
	Hours         int      `json:"hours"`
	Minutes       int      `json:"minutes"`
	Notes         string   `json:"notes"`
}

type entryListResponse struct {
	Total   int                `json:"total"`
	Count   int                `json:"count"`
	Entries []domain.TimeEntry `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) listEntries(w http.ResponseWriter, r *http.Request) {
	list, err := a.Entries.List(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, err)
		return
	}
	entries := list.Entries
	if entries == nil {
		entries = []domain.TimeEntry{}
	}
	writeJSON(w, http.StatusOK, entryListResponse{Total: list.Total, Count: len(entries), Entries: entries})
}

func (a *API) createEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("decoding entry: %v", err)})
		return
	}
	if req.Hours < 0 || req.Minutes < 0 || req.Minutes > 59 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "hours must be >= 0 and minutes within 0-59"})
		return
	}

	e := domain.TimeEntry{
		Date:          req.Date,
		Worker:        req.Worker,
		Category:      req.Category,
		DurationHours: domain.FromHoursMinutes(req.Hours, req.Minutes),
		Notes:         req.Notes,
	}
	if req.DurationHours != nil {
		e.DurationHours = *req.DurationHours
	}
	if e.DurationHours == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "duration must be greater than zero"})
		return
	}
	if err := a.Entries.Log(r.Context(), &e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (a *API) getEntry(w http.ResponseWriter, r *http.Request) {
	e, err := a.Entries.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (a *API) deleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := a.Entries.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) clearEntries(w http.ResponseWriter, r *http.Request) {
	n, err := a.Entries.Clear(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}

// dashboard accepts days, weekStart, today (YYYY-MM-DD) and the entry filter
// parameters.
func (a *API) dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := a.now()
	req := service.DashboardRequest{Now: &now, Filter: filterFromQuery(r)}

	if v := q.Get("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 || days > analytics.MaxSeriesDays {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("days must be an integer between 1 and %d, got %q", analytics.MaxSeriesDays, v)})
			return
		}
		req.SeriesDays = days
	}
	if v := q.Get("weekStart"); v != "" {
		d, err := config.ParseWeekday(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		req.WeekStart = &d
	}
	req.Today = q.Get("today")

	resp, err := a.Dashboard.Dashboard(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) exportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFileName))
	if _, err := a.Export.Export(r.Context(), w, filterFromQuery(r)); err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			w.Header().Del("Content-Disposition")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeError(w, err)
	}
}

func filterFromQuery(r *http.Request) analytics.Filter {
	q := r.URL.Query()
	return analytics.Filter{
		Worker:   q.Get("worker"),
		Category: q.Get("category"),
		DateFrom: q.Get("from"),
		DateTo:   q.Get("to"),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidEntry), errors.Is(err, service.ErrInvalidRequest):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
