package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var filter analytics.Filter
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries as CSV",
		Long: "Export entries, newest first, as CSV with Date, Worker, Category,\n" +
			"Hours, Minutes and Notes columns. Use --out - for stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFilterDates(cmd, filter); err != nil {
				return err
			}

			// Buffer first so an empty export never creates the file.
			var buf bytes.Buffer
			n, err := app.Export.Export(cmd.Context(), &buf, filter)
			if errors.Is(err, export.ErrNothingToExport) {
				fmt.Fprintln(cmd.ErrOrStderr(), "No data to export")
				return nil
			}
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", n, out)
			return nil
		},
	}

	addFilterFlags(cmd.Flags(), &filter)
	cmd.Flags().StringVarP(&out, "out", "o", export.DefaultFileName, "Output file, or - for stdout")
	return cmd
}
