package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/export"
	"github.com/alexanderramin/worklog/internal/repository"
)

type exportService struct {
	entries  repository.EntryRepo
	observer UseCaseObserver
}

func NewExportService(entries repository.EntryRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{entries: entries, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Export(ctx context.Context, w io.Writer, filter analytics.Filter) (n int, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "export-csv", StartedAt: startedAt, Duration: time.Since(startedAt),
			Success: err == nil, Err: err,
			Fields: map[string]any{"rows": n},
		})
	}()

	all, err := s.entries.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading entries: %w", err)
	}
	rows := filter.Apply(all)
	if err := export.WriteCSV(w, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
