package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/domain"
)

const entryColumns = `id, entry_date, worker, category, duration_hours, notes, created_at`

// SQLEntryRepo implements EntryRepo with portable SQL. The same queries run
// on SQLite and MySQL; use the dialect constructors below.
type SQLEntryRepo struct {
	db db.DBTX
}

// NewEntryRepo creates an EntryRepo over any DBTX. Services use it to build
// tx-scoped repositories inside a UnitOfWork regardless of the store.
func NewEntryRepo(conn db.DBTX) *SQLEntryRepo {
	return &SQLEntryRepo{db: conn}
}

// NewSQLiteEntryRepo creates an EntryRepo for the embedded SQLite store.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLEntryRepo {
	return NewEntryRepo(conn)
}

func (r *SQLEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (` + entryColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Date,
		e.Worker,
		e.Category,
		e.DurationHours,
		e.Notes,
		formatCreatedAt(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLEntryRepo) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("time entry %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}
	return &e, nil
}

func (r *SQLEntryRepo) List(ctx context.Context) ([]domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		ORDER BY entry_date DESC, created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning time entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}

func (r *SQLEntryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM time_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting time entries: %w", err)
	}
	return n, nil
}

func (r *SQLEntryRepo) DistinctWorkers(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "worker")
}

func (r *SQLEntryRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

// distinct lists the sorted unique values of a label column. column is always
// one of the constants above, never user input.
func (r *SQLEntryRepo) distinct(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %[1]s FROM time_entries ORDER BY %[1]s`, column)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", column, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s values: %w", column, err)
	}
	return values, nil
}

func (r *SQLEntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("time entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLEntryRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries`)
	if err != nil {
		return 0, fmt.Errorf("clearing time entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking cleared rows: %w", err)
	}
	return int(n), nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry scans one row in entryColumns order and parses created_at.
func scanEntry(row rowScanner) (domain.TimeEntry, error) {
	var e domain.TimeEntry
	var createdAtStr string
	if err := row.Scan(&e.ID, &e.Date, &e.Worker, &e.Category, &e.DurationHours, &e.Notes, &createdAtStr); err != nil {
		return domain.TimeEntry{}, err
	}
	createdAt, err := parseCreatedAt(createdAtStr)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("parsing created_at: %w", err)
	}
	e.CreatedAt = createdAt
	return e, nil
}
