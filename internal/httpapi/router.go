// Package httpapi exposes the entry store and dashboard over JSON/HTTP.
package httpapi

import (
	"io"
	"net/http"
	"time"

	"github.com/alexanderramin/worklog/internal/service"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// API holds the services behind the HTTP routes.
type API struct {
	Entries   service.EntryService
	Dashboard service.DashboardService
	Export    service.ExportService

	// Now is read once per dashboard request. Nil means the wall clock.
	Now func() time.Time
}

// NewRouter registers every route on a fresh mux.Router.
func (a *API) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/entries", a.listEntries).Methods(http.MethodGet)
	r.HandleFunc("/entries", a.createEntry).Methods(http.MethodPost)
	r.HandleFunc("/entries", a.clearEntries).Methods(http.MethodDelete)
	r.HandleFunc("/entries/{id}", a.getEntry).Methods(http.MethodGet)
	r.HandleFunc("/entries/{id}", a.deleteEntry).Methods(http.MethodDelete)
	r.HandleFunc("/dashboard", a.dashboard).Methods(http.MethodGet)
	r.HandleFunc("/export.csv", a.exportCSV).Methods(http.MethodGet)

	return r
}

// Handler wraps the router with panic recovery and an Apache-style access
// log written to accessLog. A nil accessLog disables the access log.
func (a *API) Handler(accessLog io.Writer) http.Handler {
	var h http.Handler = a.NewRouter()
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(false))(h)
	if accessLog != nil {
		h = handlers.LoggingHandler(accessLog, h)
	}
	return h
}

func (a *API) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}
