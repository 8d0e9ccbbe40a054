package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/google/uuid"
)

type entryService struct {
	entries  repository.EntryRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewEntryService(entries repository.EntryRepo, uow db.UnitOfWork, observers ...UseCaseObserver) EntryService {
	return &entryService{
		entries:  entries,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *entryService) Log(ctx context.Context, e *domain.TimeEntry) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "log-entry", StartedAt: startedAt, Duration: time.Since(startedAt),
			Success: err == nil, Err: err,
			Fields: map[string]any{"worker": e.Worker, "category": e.Category, "hours": e.DurationHours},
		})
	}()

	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedAt = time.Now().UTC()
	return s.entries.Create(ctx, e)
}

func (s *entryService) Import(ctx context.Context, entries []domain.TimeEntry) (n int, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "import-entries", StartedAt: startedAt, Duration: time.Since(startedAt),
			Success: err == nil, Err: err,
			Fields: map[string]any{"requested": len(entries), "imported": n},
		})
	}()

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewEntryRepo(tx)
		for i := range entries {
			e := entries[i]
			e.ID = uuid.New().String()
			if e.CreatedAt.IsZero() {
				e.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
			}
			if err := txEntries.Create(ctx, &e); err != nil {
				return fmt.Errorf("importing entry %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *entryService) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *entryService) List(ctx context.Context, filter analytics.Filter) (*EntryList, error) {
	all, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return &EntryList{Entries: filter.Apply(all), Total: len(all)}, nil
}

func (s *entryService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "delete-entry", StartedAt: startedAt, Duration: time.Since(startedAt),
			Success: err == nil, Err: err,
			Fields: map[string]any{"id": id},
		})
	}()
	return s.entries.Delete(ctx, id)
}

func (s *entryService) Clear(ctx context.Context) (n int, err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "clear-entries", StartedAt: startedAt, Duration: time.Since(startedAt),
			Success: err == nil, Err: err,
			Fields: map[string]any{"deleted": n},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		n, txErr = repository.NewEntryRepo(tx).DeleteAll(ctx)
		return txErr
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *entryService) Workers(ctx context.Context) ([]string, error) {
	return s.entries.DistinctWorkers(ctx)
}

func (s *entryService) Categories(ctx context.Context) ([]string, error) {
	return s.entries.DistinctCategories(ctx)
}
