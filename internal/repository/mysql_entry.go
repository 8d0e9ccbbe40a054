package repository

import "github.com/alexanderramin/worklog/internal/db"

// NewMySQLEntryRepo creates an EntryRepo for a MySQL store opened with
// db.OpenMySQL. The schema's binary collation keeps label filters and DISTINCT
// case sensitive, matching SQLite.
func NewMySQLEntryRepo(conn db.DBTX) *SQLEntryRepo {
	return NewEntryRepo(conn)
}

var (
	_ EntryRepo = (*SQLEntryRepo)(nil)
)
