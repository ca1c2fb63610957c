package report

import (
	"driver-training-service/internal/domain"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	landscapeWidth  = 297.0
	tableLeft       = 20.0
	tableWidth      = 257.0
	weeklyRowHeight = 20.0
	breakdownLimit  = 180.0
)

var (
	weeklyHeaders   = []string{"Day", "Book On", "Book Off", "Hours", "Duties"}
	weeklyColWidths = []float64{40, 35, 35, 30, 117}
)

// WeeklyRoster renders the Monday to Sunday roster for the week containing
// weekEnding. Entries outside that week are ignored; days without an entry are
// shown as rest days.
func (g *Generator) WeeklyRoster(driver domain.Driver, entries []domain.RosterEntry, weekEnding string) (*Document, error) {
	end, err := domain.ParseDate("week_ending", weekEnding)
	if err != nil {
		return nil, fmt.Errorf("weekly roster: %w", err)
	}
	monday, sunday := WeekBounds(end)
	entries = entriesBetween(entries, monday, sunday)

	byDate := make(map[string]domain.RosterEntry, len(entries))
	for _, e := range entries {
		if _, dup := byDate[e.Date]; !dup {
			byDate[e.Date] = e
		}
	}

	pdf := g.newPDF("L", driver.Name+" Weekly Roster")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawBrandHeader(pdf, tr, driver.Name, monday, sunday)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}

	y := drawWeekTable(pdf, tr, days, byDate, 45)
	y = drawBreakdown(pdf, tr, days, byDate, y+15)
	drawWeeklySummary(pdf, entries, y+10)
	g.drawFooter(pdf, landscapeWidth)

	filename := fmt.Sprintf("%s-weekly-roster-%s.pdf", fileSafe(driver.Name), sunday.Format(domain.DateLayout))
	return render(pdf, filename)
}

func drawBrandHeader(pdf *fpdf.Fpdf, tr func(string) string, name string, monday, sunday time.Time) {
	fill(pdf, primaryColor)
	pdf.Rect(0, 0, landscapeWidth, 30, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, 15, tr("Iarnród Éireann"))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 25, "Irish Rail")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(150, 15, tr(name))
	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(150, 25, "Weekly Roster")

	textColor(pdf, primaryColor)
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(150, 38, fmt.Sprintf("%s - %s", monday.Format("02 January"), sunday.Format("02 January 2006")))
}

func drawWeekTable(pdf *fpdf.Fpdf, tr func(string) string, days []time.Time, byDate map[string]domain.RosterEntry, top float64) float64 {
	fill(pdf, lightGray)
	pdf.Rect(tableLeft, top, tableWidth, 12, "F")

	textColor(pdf, primaryColor)
	pdf.SetFont("Helvetica", "B", 12)
	x := tableLeft
	for i, h := range weeklyHeaders {
		pdf.Text(x+5, top+8, h)
		x += weeklyColWidths[i]
	}

	y := top + 12
	for i, day := range days {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(248, 249, 250)
		}
		drawColor(pdf, borderColor)
		pdf.Rect(tableLeft, y, tableWidth, weeklyRowHeight, "FD")

		x = tableLeft
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(x+5, y+12, day.Format("Monday"))
		x += weeklyColWidths[0]

		pdf.SetFont("Helvetica", "", 12)
		entry, ok := byDate[day.Format(domain.DateLayout)]
		if !ok {
			textColor(pdf, restTextColor)
			pdf.Text(x+5, y+12, "Rest Day")
			y += weeklyRowHeight
			continue
		}

		pdf.Text(x+5, y+12, orNA(entry.BookOnTime))
		x += weeklyColWidths[1]
		pdf.Text(x+5, y+12, orNA(entry.BookOffTime))
		x += weeklyColWidths[2]
		pdf.Text(x+5, y+12, fmt.Sprintf("%.1f", entry.DrivingHours()))
		x += weeklyColWidths[3]
		pdf.Text(x+5, y+12, tr(truncate(entry.Duties, 50)))

		y += weeklyRowHeight
	}
	return y
}

func drawBreakdown(pdf *fpdf.Fpdf, tr func(string) string, days []time.Time, byDate map[string]domain.RosterEntry, top float64) float64 {
	if top > breakdownLimit {
		pdf.AddPage()
		top = 20
	}
	fill(pdf, primaryColor)
	pdf.Rect(tableLeft, top, tableWidth, 15, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(25, top+10, "Daily Duties Breakdown")

	y := top + 25
	for _, day := range days {
		textColor(pdf, primaryColor)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(25, y, fmt.Sprintf("%s - %s", day.Format("Monday"), day.Format("02/01/2006")))
		y += 8

		pdf.SetFont("Helvetica", "", 11)
		entry, ok := byDate[day.Format(domain.DateLayout)]
		if ok {
			pdf.SetTextColor(0, 0, 0)
			pdf.Text(25, y, fmt.Sprintf("Book On: %s | Book Off: %s | Hours: %.1f",
				orNA(entry.BookOnTime), orNA(entry.BookOffTime), entry.DrivingHours()))
			y += 6

			for _, line := range pdf.SplitText(tr(entry.Duties), 250) {
				if y > breakdownLimit+10 {
					pdf.AddPage()
					y = 20
				}
				pdf.Text(25, y, line)
				y += 5
			}

			if len(entry.RouteSegments) > 0 {
				types := make([]string, len(entry.RouteSegments))
				for i, s := range entry.RouteSegments {
					types[i] = string(s.RouteType)
				}
				pdf.SetFont("Helvetica", "I", 11)
				textColor(pdf, mutedTextColor)
				pdf.Text(25, y, "Route Type: "+strings.Join(types, ", "))
				pdf.SetFont("Helvetica", "", 11)
				y += 5
			}
		} else {
			textColor(pdf, restTextColor)
			pdf.Text(25, y, "Rest Day - No duties assigned")
			y += 5
		}
		y += 5

		if y > breakdownLimit {
			pdf.AddPage()
			y = 20
		}
	}
	return y
}

func drawWeeklySummary(pdf *fpdf.Fpdf, entries []domain.RosterEntry, top float64) {
	// Summary box plus footer must fit above the page edge.
	if top+30 > 185 {
		pdf.AddPage()
		top = 20
	}

	fill(pdf, lightGray)
	drawColor(pdf, borderColor)
	pdf.Rect(tableLeft, top, tableWidth, 30, "FD")

	minutes, mainline := 0, 0
	for _, e := range entries {
		minutes += e.TotalDrivingHours*60 + e.TotalDrivingMinutes
		if e.HasSegment(func(s domain.RouteSegment) bool { return s.IsMainline }) {
			mainline++
		}
	}

	textColor(pdf, primaryColor)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(25, top+10, "Weekly Summary")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(25, top+20, fmt.Sprintf("Total Working Days: %d", len(entries)))
	pdf.Text(150, top+20, fmt.Sprintf("Total Hours: %.1f", float64(minutes)/60))
	pdf.Text(25, top+28, fmt.Sprintf("Mainline Days: %d", mainline))
	pdf.Text(150, top+28, fmt.Sprintf("Other Routes: %d", len(entries)-mainline))
}

func (g *Generator) drawFooter(pdf *fpdf.Fpdf, pageWidth float64) {
	_, pageHeight := pdf.GetPageSize()
	lineY := pageHeight - 20

	drawColor(pdf, primaryColor)
	pdf.SetLineWidth(0.5)
	pdf.Line(20, lineY, pageWidth-20, lineY)

	textColor(pdf, mutedTextColor)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(20, lineY+5, "Generated by Trainee Driver Management System")
	pdf.Text(pageWidth-97, lineY+5, "Generated on "+g.now().Format("02/01/2006 15:04"))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
