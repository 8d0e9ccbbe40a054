package cli

import (
	"time"

	"github.com/alexanderramin/worklog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Entries   service.EntryService
	Dashboard service.DashboardService
	Export    service.ExportService

	// Location decides which calendar day "today" is.
	Location *time.Location
	// HTTPAddr is the default listen address of the serve command.
	HTTPAddr string

	// Now and IsInteractive are swapped out in tests.
	Now           func() time.Time
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}
	if a.Location != nil {
		now = now.In(a.Location)
	}
	return now
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "worklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "worklog",
		Short:         "Time-entry log with weekly metrics, breakdowns and CSV export",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEntryCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newSeedCmd(app),
		newServeCmd(app),
		newDashboardCmd(app),
	)

	return root
}
