package domain

import (
	"fmt"
	"strings"
)

// One stage of the fixed training progression.
type TrainingPhase string

const (
	PhaseTrainee          TrainingPhase = "trainee"
	PhaseAppointed        TrainingPhase = "appointed"
	PhaseCorkEastLearning TrainingPhase = "cork-east-learning"
	PhaseCorkEastSolo     TrainingPhase = "cork-east-solo"
	PhaseTraleeLearning   TrainingPhase = "tralee-learning"
	PhaseTraleeSolo       TrainingPhase = "tralee-solo"
	PhaseMainline         TrainingPhase = "mainline"
)

// PhaseOrder lists the phases from first to terminal.
var PhaseOrder = []TrainingPhase{
	PhaseTrainee,
	PhaseAppointed,
	PhaseCorkEastLearning,
	PhaseCorkEastSolo,
	PhaseTraleeLearning,
	PhaseTraleeSolo,
	PhaseMainline,
}

// Minimum cumulative counters a driver must reach within a phase.
type PhaseRequirements struct {
	TotalDays             int `json:"totalDays"`
	MainlineDays          int `json:"mainlineDays"`
	TotalHours            int `json:"totalHours"`
	PilotDays             int `json:"pilotDays"`
	CorkEastCobhTrips     int `json:"corkEastCobhTrips"`
	CorkEastMidletonTrips int `json:"corkEastMidletonTrips"`
	TraleeLearningDays    int `json:"traleeLearningDays"`
}

var trainingRequirements = map[TrainingPhase]PhaseRequirements{
	PhaseTrainee: {
		TotalDays: 70, MainlineDays: 56, TotalHours: 250, PilotDays: 14,
		CorkEastCobhTrips: 10, CorkEastMidletonTrips: 10, TraleeLearningDays: 5,
	},
	PhaseAppointed: {
		TotalDays: 30, MainlineDays: 20, TotalHours: 100, PilotDays: 5,
		CorkEastCobhTrips: 5, CorkEastMidletonTrips: 5, TraleeLearningDays: 3,
	},
	PhaseCorkEastLearning: {
		TotalDays: 20, MainlineDays: 10, TotalHours: 80, PilotDays: 3,
		CorkEastCobhTrips: 15, CorkEastMidletonTrips: 15,
	},
	PhaseCorkEastSolo: {
		TotalDays: 15, MainlineDays: 5, TotalHours: 60, PilotDays: 2,
		CorkEastCobhTrips: 20, CorkEastMidletonTrips: 20,
	},
	PhaseTraleeLearning: {
		TotalDays: 25, MainlineDays: 15, TotalHours: 100, PilotDays: 5,
		TraleeLearningDays: 10,
	},
	PhaseTraleeSolo: {
		TotalDays: 20, MainlineDays: 10, TotalHours: 80, PilotDays: 3,
		TraleeLearningDays: 15,
	},
	PhaseMainline: {},
}

// RequirementsFor returns the requirement bundle for phase, or false when the phase is unknown.
func RequirementsFor(phase TrainingPhase) (PhaseRequirements, bool) {
	r, ok := trainingRequirements[phase]
	return r, ok
}

// ParsePhase validates a phase string supplied at the API boundary.
func ParsePhase(s string) (TrainingPhase, error) {
	p := TrainingPhase(strings.TrimSpace(s))
	if _, ok := trainingRequirements[p]; !ok {
		return "", NewValidationError("current_phase", fmt.Sprintf("unknown phase %q", s))
	}
	return p, nil
}
