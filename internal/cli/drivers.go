package cli

import (
	"driver-training-service/internal/domain"
	"driver-training-service/internal/services"
	"driver-training-service/internal/store"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) driversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List drivers with their current phase progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				drivers := st.Drivers()
				out := cmd.OutOrStdout()
				if len(drivers) == 0 {
					fmt.Fprintln(out, "No drivers.")
					return nil
				}

				pct := a.percentage()
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPHASE\tDAYS\tHOURS\tPROGRESS")
				for _, d := range drivers {
					p, _ := st.DriverProgress(d.ID)
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.1f\t%s\n",
						d.ID, d.Name, d.Status, d.CurrentPhase,
						p.TraineeDaysCompleted, p.TraineeHoursCompleted,
						percentColor(pct(p, d.CurrentPhase)))
				}
				return w.Flush()
			})
		},
	}
}

func percentColor(pct float64) string {
	s := fmt.Sprintf("%5.1f%%", pct)
	switch {
	case pct >= 100:
		return color.New(color.FgGreen).Sprint(s)
	case pct >= 50:
		return color.New(color.FgYellow).Sprint(s)
	default:
		return color.New(color.FgRed).Sprint(s)
	}
}

func (a *app) progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <driver-id>",
		Short: "Show a driver's counters against their phase requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd.Context(), func(st *store.Store) error {
				d, err := lookupDriver(st, args[0])
				if err != nil {
					return err
				}
				p, _ := st.DriverProgress(d.ID)
				displayProgress(cmd.OutOrStdout(), d, p, a.percentage()(p, d.CurrentPhase))
				return nil
			})
		},
	}
}

func displayProgress(out io.Writer, d domain.Driver, p domain.TrainingProgress, pct float64) {
	fmt.Fprintf(out, "%s (%s)\n", d.Name, d.ID)
	fmt.Fprintf(out, "  Phase:  %s  %s\n", d.CurrentPhase, percentColor(pct))
	fmt.Fprintf(out, "  Next:   %s\n\n", services.NextPhase(d.CurrentPhase))

	req, ok := domain.RequirementsFor(d.CurrentPhase)
	if !ok {
		fmt.Fprintln(out, color.New(color.FgRed).Sprint("  unknown phase; no requirements"))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	row := func(label string, done float64, required int) {
		mark := color.New(color.FgGreen).Sprint("✓")
		if done < float64(required) {
			mark = color.New(color.FgYellow).Sprint("·")
		}
		fmt.Fprintf(w, "  %s\t%s\t%g / %d\n", mark, label, done, required)
	}
	row("days", float64(p.TraineeDaysCompleted), req.TotalDays)
	row("mainline days", float64(p.MainlineDaysCompleted), req.MainlineDays)
	row("hours", p.TraineeHoursCompleted, req.TotalHours)
	row("pilot days", float64(p.PilotDaysCompleted), req.PilotDays)
	row("Cobh trips", float64(p.CorkEastCobhTrips), req.CorkEastCobhTrips)
	row("Midleton trips", float64(p.CorkEastMidletonTrips), req.CorkEastMidletonTrips)
	row("Tralee learning days", float64(p.TraleeLearningDays), req.TraleeLearningDays)
	_ = w.Flush()

	if services.CanAdvanceToNextPhase(d, p) {
		fmt.Fprintln(out, color.New(color.FgGreen).Sprint("\nReady to advance."))
	} else {
		fmt.Fprintln(out, "\nNot yet ready to advance.")
	}
}
