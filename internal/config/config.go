// Package config loads worklog settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/worklog/internal/analytics"
)

// Config holds all runtime configuration.
type Config struct {
	DBPath       string
	MySQLDSN     string
	WeekStart    time.Weekday
	SeriesDays   int
	LogUseCases  bool
	HTTPAddr     string
	TimezoneName string
}

// DefaultConfig returns a Config with defaults. DBPath is left empty and is
// resolved against the home directory by Load.
func DefaultConfig() Config {
	return Config{
		WeekStart:  time.Sunday,
		SeriesDays: 14,
		HTTPAddr:   ":8080",
	}
}

// Load reads configuration from WORKLOG_* environment variables, falling back
// to defaults for unset or unparseable values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("WORKLOG_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".worklog", "worklog.db")
	}
	cfg.MySQLDSN = os.Getenv("WORKLOG_MYSQL_DSN")

	if v := os.Getenv("WORKLOG_WEEK_START"); v != "" {
		if d, err := ParseWeekday(v); err == nil {
			cfg.WeekStart = d
		}
	}
	if v := os.Getenv("WORKLOG_SERIES_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= analytics.MaxSeriesDays {
			cfg.SeriesDays = n
		}
	}
	if v := os.Getenv("WORKLOG_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WORKLOG_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	cfg.TimezoneName = os.Getenv("WORKLOG_TZ")

	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be defaulted silently.
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimezoneName, defaulting to the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.TimezoneName == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.TimezoneName, err)
	}
	return loc, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts a full or three-letter English weekday name.
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for name, d := range weekdays {
		if key == name || (len(key) == 3 && strings.HasPrefix(name, key)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
