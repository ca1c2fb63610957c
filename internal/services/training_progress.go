package services

import (
	"driver-training-service/internal/domain"
	"strings"
)

// CalculateTrainingProgress folds a driver's roster entries into cumulative counters.
//
// Entries belonging to other drivers are ignored. An entry counts as a trainee day
// when it has at least one route segment. Mainline, pilot and Tralee days are counted
// per matching segment, so two mainline legs on one date count as two mainline days.
// Hours are summed as whole minutes and divided once, which keeps the result identical
// regardless of entry order.
func CalculateTrainingProgress(driver domain.Driver, entries []domain.RosterEntry) domain.TrainingProgress {
	var (
		p            domain.TrainingProgress
		totalMinutes int
	)

	for _, entry := range entries {
		if entry.DriverID != driver.ID || len(entry.RouteSegments) == 0 {
			continue
		}

		p.TraineeDaysCompleted++

		for _, seg := range entry.RouteSegments {
			totalMinutes += seg.TotalMinutes()

			if seg.IsMainline {
				p.MainlineDaysCompleted++
			}
			if seg.IsPilot {
				p.PilotDaysCompleted++
			}
			if seg.IsTralee {
				p.TraleeLearningDays++
			}
			if seg.IsCorkEast {
				// Independent tests: a label naming both stations counts for both.
				if strings.Contains(seg.Route, "Cobh") {
					p.CorkEastCobhTrips++
				}
				if strings.Contains(seg.Route, "Midleton") {
					p.CorkEastMidletonTrips++
				}
			}
		}
	}

	p.TraineeHoursCompleted = float64(totalMinutes) / 60
	// Ceiling division over five-day weeks.
	p.TraineeWeeksCompleted = (p.TraineeDaysCompleted + 4) / 5

	return p
}
