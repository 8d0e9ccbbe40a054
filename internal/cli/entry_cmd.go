package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/sample"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entry",
		Aliases: []string{"entries"},
		Short:   "Log, list and remove time entries",
	}

	cmd.AddCommand(
		newEntryLogCmd(app),
		newEntryListCmd(app),
		newEntryShowCmd(app),
		newEntryRemoveCmd(app),
		newEntryClearCmd(app),
	)

	return cmd
}

func newEntryLogCmd(app *App) *cobra.Command {
	var values entryFormValues
	var duration float64
	var interactive bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a time entry",
		Long: "Log a time entry. Duration is given as --hours/--minutes or as\n" +
			"fractional --duration hours. Without --worker on a terminal, or with\n" +
			"--interactive, an entry form is shown instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if values.Date == "" {
				values.Date = domain.DateKey(app.now())
			}

			if interactive || (values.Worker == "" && app.interactive()) {
				workers, _ := app.Entries.Workers(ctx)
				categories, _ := app.Entries.Categories(ctx)
				form := entryForm(&values, mergeLabels(sample.Workers, workers), mergeLabels(sample.Categories, categories))
				if err := form.RunWithContext(ctx); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
						return nil
					}
					return err
				}
			}

			e, err := values.toEntry()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("duration") {
				e.DurationHours = duration
			}
			if e.DurationHours == 0 {
				return fmt.Errorf("enter a duration greater than zero")
			}
			if err := app.Entries.Log(ctx, &e); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s of %s for %s on %s (%s)\n",
				formatter.FormatHours(e.DurationHours), e.Category, e.Worker, e.Date, e.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&values.Date, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&values.Worker, "worker", "", "Worker name")
	cmd.Flags().StringVar(&values.Category, "category", "", "Task category")
	cmd.Flags().StringVar(&values.Hours, "hours", "", "Whole hours")
	cmd.Flags().StringVar(&values.Minutes, "minutes", "", "Minutes (0-59)")
	cmd.Flags().Float64Var(&duration, "duration", 0, "Duration in fractional hours, overrides --hours/--minutes")
	cmd.Flags().StringVar(&values.Notes, "notes", "", "Free-text notes")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the entry with a form")

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var filter analytics.Filter

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFilterDates(cmd, filter); err != nil {
				return err
			}
			list, err := app.Entries.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntryTable(list.Entries, list.Total, domain.DateKey(app.now())))
			return nil
		},
	}

	addFilterFlags(cmd.Flags(), &filter)
	return cmd
}

func newEntryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Entries.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntry(e))
			return nil
		},
	}
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Entries.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", args[0])
			return nil
		},
	}
}

func newEntryClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to clear all entries without --force")
				}
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Delete every entry?").
						Affirmative("Yes").
						Negative("No").
						Value(&confirmed),
				)).WithTheme(worklogHuhTheme()).WithShowHelp(false)
				if err := form.RunWithContext(cmd.Context()); err != nil && !errors.Is(err, huh.ErrUserAborted) {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			n, err := app.Entries.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
