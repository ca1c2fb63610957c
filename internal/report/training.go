package report

import (
	"driver-training-service/internal/domain"
	"driver-training-service/internal/services"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
)

const portraitWidth = 210.0

// TrainingReport renders the driver's counters against the trainee requirements
// and their standing in the current phase.
func (g *Generator) TrainingReport(driver domain.Driver, progress domain.TrainingProgress, entries []domain.RosterEntry) (*Document, error) {
	pdf := g.newPDF("P", "Training Report - "+driver.Name)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 30, tr("Training Report - "+driver.Name))

	y := drawDriverInfo(pdf, driver, 50)

	trainee, _ := domain.RequirementsFor(domain.PhaseTrainee)
	rows := []struct {
		label    string
		done     string
		required int
	}{
		{"Days Completed", fmt.Sprintf("%d", progress.TraineeDaysCompleted), trainee.TotalDays},
		{"Hours Completed", fmt.Sprintf("%.1f", progress.TraineeHoursCompleted), trainee.TotalHours},
		{"Mainline Days", fmt.Sprintf("%d", progress.MainlineDaysCompleted), trainee.MainlineDays},
		{"Pilot Days", fmt.Sprintf("%d", progress.PilotDaysCompleted), trainee.PilotDays},
		{"Cork East Cobh Trips", fmt.Sprintf("%d", progress.CorkEastCobhTrips), trainee.CorkEastCobhTrips},
		{"Cork East Midleton Trips", fmt.Sprintf("%d", progress.CorkEastMidletonTrips), trainee.CorkEastMidletonTrips},
		{"Tralee Learning Days", fmt.Sprintf("%d", progress.TraleeLearningDays), trainee.TraleeLearningDays},
	}

	y += 10
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, y, "Training Progress:")
	pdf.SetFont("Helvetica", "", 12)
	y += 10
	for _, r := range rows {
		pdf.Text(20, y, fmt.Sprintf("%s: %s/%d", r.label, r.done, r.required))
		y += 10
	}
	pdf.Text(20, y, fmt.Sprintf("Weeks Completed: %d", progress.TraineeWeeksCompleted))
	y += 15

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, y, "Phase Standing:")
	pdf.SetFont("Helvetica", "", 12)
	y += 10
	pdf.Text(20, y, fmt.Sprintf("%s: %.1f%% complete", driver.CurrentPhase, g.percentage(progress, driver.CurrentPhase)))
	y += 10
	pdf.Text(20, y, fmt.Sprintf("Next Phase: %s", services.NextPhase(driver.CurrentPhase)))
	y += 10
	ready := "No"
	if services.CanAdvanceToNextPhase(driver, progress) {
		ready = "Yes"
	}
	pdf.Text(20, y, "Ready to Advance: "+ready)
	y += 10
	pdf.Text(20, y, fmt.Sprintf("Roster Entries Logged: %d", len(entries)))

	g.drawFooter(pdf, portraitWidth)

	return render(pdf, fmt.Sprintf("%s-training-report.pdf", fileSafe(driver.Name)))
}

// DriverHistory renders driver details and the ten most recent roster entries.
func (g *Generator) DriverHistory(driver domain.Driver, progress domain.TrainingProgress, entries []domain.RosterEntry) (*Document, error) {
	pdf := g.newPDF("P", "Driver History - "+driver.Name)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 30, tr("Driver History - "+driver.Name))

	y := drawDriverInfo(pdf, driver, 50)
	pdf.Text(20, y, fmt.Sprintf("Days Completed: %d | Hours Completed: %.1f",
		progress.TraineeDaysCompleted, progress.TraineeHoursCompleted))
	y += 20

	recent := append([]domain.RosterEntry(nil), entries...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > 10 {
		recent = recent[:10]
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, y, "Recent Roster Entries:")
	pdf.SetFont("Helvetica", "", 12)
	y += 10

	if len(recent) == 0 {
		textColor(pdf, restTextColor)
		pdf.Text(20, y, "No roster entries recorded")
	}
	for _, e := range recent {
		pdf.Text(20, y, tr(fmt.Sprintf("%s: %s", e.Date, truncate(e.Duties, 80))))
		y += 8
	}

	g.drawFooter(pdf, portraitWidth)

	return render(pdf, fmt.Sprintf("%s-training-history.pdf", fileSafe(driver.Name)))
}

func drawDriverInfo(pdf *fpdf.Fpdf, d domain.Driver, top float64) float64 {
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, top, "Start Date: "+d.StartDate)
	pdf.Text(20, top+10, fmt.Sprintf("Current Phase: %s", d.CurrentPhase))
	pdf.Text(20, top+20, fmt.Sprintf("Status: %s", d.Status))
	return top + 30
}
