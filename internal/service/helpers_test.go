package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (repository.EntryRepo, db.UnitOfWork) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteEntryRepo(database), testutil.NewTestUoW(database)
}

// seedEntries stores entries directly through the repo, keeping their IDs.
func seedEntries(t *testing.T, repo repository.EntryRepo, entries ...domain.TimeEntry) {
	t.Helper()
	ctx := context.Background()
	for i := range entries {
		e := entries[i]
		if e.ID == "" {
			e.ID = testutil.NewTestEntry().ID
		}
		require.NoError(t, repo.Create(ctx, &e))
	}
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}
