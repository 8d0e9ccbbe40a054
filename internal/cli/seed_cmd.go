package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/alexanderramin/worklog/internal/sample"
	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var count int
	var seed uint64
	var replace bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Add generated sample entries from the last two weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.now()
			if !cmd.Flags().Changed("seed") {
				seed = uint64(now.UnixNano())
			}

			if replace {
				n, err := app.Entries.Clear(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d existing entries\n", n)
			}

			entries := sample.Generate(rand.New(rand.NewPCG(seed, seed)), now, count)
			n, err := app.Entries.Import(ctx, entries)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d sample entries\n", n)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", sample.DefaultCount, "Number of entries to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible data (default: time based)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Delete existing entries first")
	return cmd
}
