package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
)

// ErrInvalidRequest marks caller input the service refuses to compute with.
var ErrInvalidRequest = errors.New("invalid request")

type dashboardService struct {
	entries    repository.EntryRepo
	loc        *time.Location
	weekStart  time.Weekday
	seriesDays int
	observer   UseCaseObserver
}

// DashboardDefaults are the values used when a DashboardRequest leaves a
// field unset.
type DashboardDefaults struct {
	Location   *time.Location
	WeekStart  time.Weekday
	SeriesDays int
}

func NewDashboardService(entries repository.EntryRepo, defaults DashboardDefaults, observers ...UseCaseObserver) DashboardService {
	loc := defaults.Location
	if loc == nil {
		loc = time.Local
	}
	days := defaults.SeriesDays
	if days <= 0 || days > analytics.MaxSeriesDays {
		days = analytics.DefaultSeriesDays
	}
	return &dashboardService{
		entries:    entries,
		loc:        loc,
		weekStart:  defaults.WeekStart,
		seriesDays: days,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) Dashboard(ctx context.Context, req DashboardRequest) (resp *DashboardResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "dashboard", StartedAt: startedAt, Duration: time.Since(startedAt),
			Success: err == nil, Err: err, Fields: fields,
		})
	}()

	now := time.Now().In(s.loc)
	if req.Now != nil {
		now = req.Now.In(s.loc)
	}
	if req.Today != "" {
		day, err := time.ParseInLocation(domain.DateLayout, req.Today, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: today %q must be YYYY-MM-DD", ErrInvalidRequest, req.Today)
		}
		now = day
	}
	weekStart := s.weekStart
	if req.WeekStart != nil {
		weekStart = *req.WeekStart
	}
	days := s.seriesDays
	if req.SeriesDays > analytics.MaxSeriesDays {
		return nil, fmt.Errorf("%w: series days %d exceeds %d", ErrInvalidRequest, req.SeriesDays, analytics.MaxSeriesDays)
	}
	if req.SeriesDays > 0 {
		days = req.SeriesDays
	}

	all, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	scoped := req.Filter.Apply(all)

	today := domain.DateKey(now)
	series, err := analytics.DailySeries(scoped, today, days)
	if err != nil {
		return nil, err
	}
	weekFrom, _ := analytics.WeekBounds(now, weekStart)

	fields["entries"] = len(all)
	fields["scoped"] = len(scoped)
	fields["series_days"] = days

	return &DashboardResponse{
		GeneratedAt:   now,
		Today:         today,
		WeekFrom:      weekFrom,
		Metrics:       analytics.Summarize(scoped, now, weekStart),
		TotalHours:    analytics.TotalHours(scoped),
		Distribution:  analytics.Distribution(scoped),
		Ranking:       analytics.Ranking(scoped),
		Series:        series,
		EntryCount:    len(all),
		FilteredCount: len(scoped),
	}, nil
}
