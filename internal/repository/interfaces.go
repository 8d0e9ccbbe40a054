package repository

import (
	"context"

	"github.com/alexanderramin/worklog/internal/domain"
)

// EntryRepo persists time entries. The analytics engine never sees a repo;
// services load plain entry slices through it.
type EntryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	// List returns every entry, newest date first.
	List(ctx context.Context) ([]domain.TimeEntry, error)
	Count(ctx context.Context) (int, error)
	DistinctWorkers(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int, error)
}
