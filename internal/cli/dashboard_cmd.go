package cli

import (
	"fmt"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: "Open the interactive dashboard. When stdin is not a terminal the\n" +
			"dashboard is printed once instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				now := app.now()
				resp, err := app.Dashboard.Dashboard(cmd.Context(), service.DashboardRequest{Now: &now})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
				return nil
			}

			p := tea.NewProgram(newDashboardModel(app),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}
