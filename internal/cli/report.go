package cli

import (
	"driver-training-service/internal/report"
	"driver-training-service/internal/store"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) reportCmd() *cobra.Command {
	var (
		weekEnding string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:       "report weekly|training|history <driver-id>",
		Short:     "Render a driver report to PDF",
		ValidArgs: []string{"weekly", "training", "history"},
		Long: `Render a driver report to PDF in the output directory.

The weekly roster covers the Monday to Sunday week containing --week-ending;
without the flag the most recent week with entries is used.

Examples:
  rosterctl report training 0190f5c2-...
  rosterctl report weekly 0190f5c2-... --week-ending 2024-01-14 --out reports/`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, driverID := args[0], args[1]

			return a.withStore(cmd.Context(), func(st *store.Store) error {
				d, err := lookupDriver(st, driverID)
				if err != nil {
					return err
				}
				entries := st.RosterEntriesForDriver(d.ID)
				progress, _ := st.DriverProgress(d.ID)

				gen := report.NewGenerator()
				gen.Percentage = a.percentage()

				var doc *report.Document
				switch kind {
				case "weekly":
					we := weekEnding
					if we == "" {
						weeks := report.AvailableWeeks(entries)
						if len(weeks) == 0 {
							return errors.New("no roster entries; pass --week-ending")
						}
						we = weeks[0].WeekEnding
					}
					doc, err = gen.WeeklyRoster(d, entries, we)
				case "training":
					doc, err = gen.TrainingReport(d, progress, entries)
				case "history":
					doc, err = gen.DriverHistory(d, progress, entries)
				default:
					return fmt.Errorf("unknown report %q (want weekly, training or history)", kind)
				}
				if err != nil {
					return err
				}

				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("create output dir: %w", err)
				}
				path := filepath.Join(outDir, doc.Filename)
				if err := doc.Save(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.New(color.FgGreen).Sprint("Wrote"), path)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&weekEnding, "week-ending", "", "any date in the week to export (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	return cmd
}

func (a *app) mailtoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mailto <driver-id>",
		Short: "Print a mail draft link for sending the training report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				d, err := lookupDriver(st, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), report.TrainingReportMailto(d))
				return nil
			})
		},
	}
}
