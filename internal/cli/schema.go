package cli

import (
	"driver-training-service/internal/store"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the state backend schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the state table for SQL backends",
		Long: `Create the app_state table when STORE_BACKEND is sqlite or postgres.
Other backends need no schema; the command only checks they can be opened.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initializing %s backend...\n", a.cfg.Backend)

			return a.withStore(cmd.Context(), func(st *store.Store) error {
				fmt.Fprintf(out, "%s %d drivers, stored under key %q\n",
					color.New(color.FgGreen).Sprint("Schema ready."), len(st.Drivers()), a.cfg.StateKey)
				return nil
			})
		},
	})

	return cmd
}
