package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/spf13/cobra"
)

// statsOptions are the persistent flags shared by every stats subcommand.
type statsOptions struct {
	filter    analytics.Filter
	weekStart weekdayValue
	days      int
	today     string
	asJSON    bool
}

func (o *statsOptions) request(cmd *cobra.Command, app *App) (service.DashboardRequest, error) {
	if err := validateFilterDates(cmd, o.filter); err != nil {
		return service.DashboardRequest{}, err
	}
	if o.days < 0 || o.days > analytics.MaxSeriesDays {
		return service.DashboardRequest{}, flagError(cmd, "days", fmt.Errorf("must be between 1 and %d", analytics.MaxSeriesDays))
	}
	if err := validateOptionalDate(o.today); err != nil {
		return service.DashboardRequest{}, flagError(cmd, "today", err)
	}
	now := app.now()
	return service.DashboardRequest{
		Now:        &now,
		Today:      o.today,
		WeekStart:  o.weekStart.ptr(),
		SeriesDays: o.days,
		Filter:     o.filter,
	}, nil
}

func newStatsCmd(app *App) *cobra.Command {
	opts := &statsOptions{}

	// render runs the dashboard query and prints either JSON of pick(resp)
	// or the formatted text.
	render := func(pick func(*service.DashboardResponse) any, text func(*service.DashboardResponse) string) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(cmd, app)
			if err != nil {
				return err
			}
			resp, err := app.Dashboard.Dashboard(cmd.Context(), req)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), pick(resp))
			}
			fmt.Fprint(cmd.OutOrStdout(), text(resp))
			return nil
		}
	}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the full dashboard: metrics, breakdowns and daily series",
		RunE: render(
			func(r *service.DashboardResponse) any { return r },
			func(r *service.DashboardResponse) string { return formatter.FormatDashboard(r) + "\n" },
		),
	}

	pf := cmd.PersistentFlags()
	addFilterFlags(pf, &opts.filter)
	pf.Var(&opts.weekStart, "week-start", "First day of the week (default from WORKLOG_WEEK_START)")
	pf.IntVar(&opts.days, "days", 0, "Days in the daily series (default from WORKLOG_SERIES_DAYS)")
	pf.StringVar(&opts.today, "today", "", "Compute as of this date (YYYY-MM-DD)")
	pf.BoolVar(&opts.asJSON, "json", false, "Print JSON instead of tables")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "summary",
			Short: "Weekly total, top category, top worker and mean hours per entry",
			RunE: render(
				func(r *service.DashboardResponse) any { return r.Metrics },
				func(r *service.DashboardResponse) string { return formatter.FormatMetrics(r.Metrics) },
			),
		},
		&cobra.Command{
			Use:   "distribution",
			Short: "Hours and share per category",
			RunE: render(
				func(r *service.DashboardResponse) any { return r.Distribution },
				func(r *service.DashboardResponse) string { return formatter.FormatDistribution(r.Distribution) },
			),
		},
		&cobra.Command{
			Use:   "ranking",
			Short: "Workers by total hours",
			RunE: render(
				func(r *service.DashboardResponse) any { return r.Ranking },
				func(r *service.DashboardResponse) string { return formatter.FormatRanking(r.Ranking) },
			),
		},
		&cobra.Command{
			Use:   "series",
			Short: "Hours per day over the trailing window",
			RunE: render(
				func(r *service.DashboardResponse) any { return r.Series },
				func(r *service.DashboardResponse) string { return formatter.FormatSeries(r.Series) },
			),
		},
	)

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
