package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"WORKLOG_DB", "WORKLOG_MYSQL_DSN", "WORKLOG_WEEK_START", "WORKLOG_SERIES_DAYS", "WORKLOG_LOG_USE_CASES", "WORKLOG_HTTP_ADDR", "WORKLOG_TZ"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".worklog", "worklog.db"), cfg.DBPath)
	assert.Equal(t, time.Sunday, cfg.WeekStart)
	assert.Equal(t, 14, cfg.SeriesDays)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.LogUseCases)
	assert.Empty(t, cfg.MySQLDSN)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WORKLOG_DB", "/tmp/custom.db")
	t.Setenv("WORKLOG_MYSQL_DSN", "u:p@tcp(db:3306)/worklog")
	t.Setenv("WORKLOG_WEEK_START", "Monday")
	t.Setenv("WORKLOG_SERIES_DAYS", "30")
	t.Setenv("WORKLOG_LOG_USE_CASES", "true")
	t.Setenv("WORKLOG_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("WORKLOG_TZ", "UTC")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, "u:p@tcp(db:3306)/worklog", cfg.MySQLDSN)
	assert.Equal(t, time.Monday, cfg.WeekStart)
	assert.Equal(t, 30, cfg.SeriesDays)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WORKLOG_DB", "/tmp/x.db")
	t.Setenv("WORKLOG_WEEK_START", "someday")
	t.Setenv("WORKLOG_SERIES_DAYS", "-3")
	t.Setenv("WORKLOG_TZ", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, cfg.WeekStart)
	assert.Equal(t, 14, cfg.SeriesDays)
}

func TestLoad_SeriesDaysAboveLimitFallsBack(t *testing.T) {
	t.Setenv("WORKLOG_DB", "/tmp/x.db")
	t.Setenv("WORKLOG_TZ", "")

	t.Setenv("WORKLOG_SERIES_DAYS", "2000000000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.SeriesDays)

	t.Setenv("WORKLOG_SERIES_DAYS", "366")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 366, cfg.SeriesDays)
}

func TestLoad_BadTimezone(t *testing.T) {
	t.Setenv("WORKLOG_DB", "/tmp/x.db")
	t.Setenv("WORKLOG_TZ", "Mars/Olympus_Mons")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("sat")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, d)

	d, err = ParseWeekday(" Wednesday ")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, d)

	_, err = ParseWeekday("mo")
	assert.Error(t, err)
}
