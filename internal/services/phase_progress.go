package services

import (
	"driver-training-service/internal/domain"
	"math"
)

// NextPhase returns the successor of phase in the fixed progression.
// The terminal phase and unrecognized names map to themselves.
func NextPhase(phase domain.TrainingPhase) domain.TrainingPhase {
	for i, p := range domain.PhaseOrder {
		if p == phase && i+1 < len(domain.PhaseOrder) {
			return domain.PhaseOrder[i+1]
		}
	}
	return phase
}

// ProgressPercentage reports completion of phase as a value in [0, 100].
//
// The formula compares the phase's day requirements (total + mainline + pilot)
// against the driver's lifetime counters, not counters scoped to the phase.
// Unknown phases yield 0; phases with no day requirement yield 100.
func ProgressPercentage(progress domain.TrainingProgress, phase domain.TrainingPhase) float64 {
	req, ok := domain.RequirementsFor(phase)
	if !ok {
		return 0
	}

	required := req.TotalDays + req.MainlineDays + req.PilotDays
	completed := progress.TraineeDaysCompleted + progress.MainlineDaysCompleted + progress.PilotDaysCompleted

	return percentage(completed, required)
}

// CappedProgressPercentage is ProgressPercentage with each counter capped at its
// own requirement, so surplus mainline days cannot stand in for missing pilot days.
func CappedProgressPercentage(progress domain.TrainingProgress, phase domain.TrainingPhase) float64 {
	req, ok := domain.RequirementsFor(phase)
	if !ok {
		return 0
	}

	required := req.TotalDays + req.MainlineDays + req.PilotDays
	completed := min(progress.TraineeDaysCompleted, req.TotalDays) +
		min(progress.MainlineDaysCompleted, req.MainlineDays) +
		min(progress.PilotDaysCompleted, req.PilotDays)

	return percentage(completed, required)
}

func percentage(completed, required int) float64 {
	if required == 0 {
		return 100
	}
	return math.Min(float64(completed)/float64(required)*100, 100)
}

// CanAdvanceToNextPhase reports whether every counter meets the minimum of the
// driver's current phase. It is advisory: phase changes are made by the user.
func CanAdvanceToNextPhase(driver domain.Driver, progress domain.TrainingProgress) bool {
	req, ok := domain.RequirementsFor(driver.CurrentPhase)
	if !ok {
		return false
	}

	return progress.TraineeDaysCompleted >= req.TotalDays &&
		progress.MainlineDaysCompleted >= req.MainlineDays &&
		progress.PilotDaysCompleted >= req.PilotDays &&
		progress.TraineeHoursCompleted >= float64(req.TotalHours) &&
		progress.CorkEastCobhTrips >= req.CorkEastCobhTrips &&
		progress.CorkEastMidletonTrips >= req.CorkEastMidletonTrips &&
		progress.TraleeLearningDays >= req.TraleeLearningDays
}
