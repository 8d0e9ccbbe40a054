package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/worklog/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import entries from a CSV export or a JSON batch",
		Long: "Import entries from a .csv file in the export layout or from a JSON\n" +
			"file of the form {\"entries\": [...]}. The batch is validated up front\n" +
			"and stored atomically; every entry receives a new ID.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %v\n", e)
				}
				return fmt.Errorf("import has %d validation errors: %w", len(errs), errors.Join(errs...))
			}

			entries := importer.Convert(schema)
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d entries are valid (dry run, nothing stored)\n", len(entries))
				return nil
			}
			n, err := app.Entries.Import(cmd.Context(), entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", n, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without storing")
	return cmd
}
