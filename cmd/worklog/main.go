package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/worklog/internal/cli"
	"github.com/alexanderramin/worklog/internal/config"
	"github.com/alexanderramin/worklog/internal/db"
	"github.com/alexanderramin/worklog/internal/repository"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Open the store: MySQL when a DSN is configured, embedded SQLite otherwise.
	var (
		database *sql.DB
		entries  repository.EntryRepo
	)
	if cfg.MySQLDSN != "" {
		database, err = db.OpenMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			return err
		}
		entries = repository.NewMySQLEntryRepo(database)
	} else {
		database, err = db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		entries = repository.NewSQLiteEntryRepo(database)
	}
	defer database.Close()

	uow := db.NewUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Entries: service.NewEntryService(entries, uow, observer),
		Dashboard: service.NewDashboardService(entries, service.DashboardDefaults{
			Location:   loc,
			WeekStart:  cfg.WeekStart,
			SeriesDays: cfg.SeriesDays,
		}, observer),
		Export:   service.NewExportService(entries, observer),
		Location: loc,
		HTTPAddr: cfg.HTTPAddr,
	}

	// Forms and the live dashboard only run on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
