package cli

import (
	"driver-training-service/internal/seed"
	"driver-training-service/internal/store"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load drivers and roster entries from a YAML fixture",
		Long: `Load drivers and roster entries from a YAML fixture.

The whole file is validated before anything is written. New IDs are assigned,
so seeding the same file twice creates duplicate drivers.

Example:
  rosterctl seed data/seeds/drivers.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := seed.Load(args[0])
			if err != nil {
				return err
			}

			return a.withStore(cmd.Context(), func(st *store.Store) error {
				res, err := seed.Apply(cmd.Context(), st, fixture)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d drivers, %d roster entries\n",
					color.New(color.FgGreen).Sprint("Seeded"), res.Drivers, res.Entries)
				return nil
			})
		},
	}
}
