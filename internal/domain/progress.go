package domain

// Derived training counters for one driver.
// Recomputed from the full roster history on every read; it has no identity of its own.
// The appointed and solo counters cannot be derived from roster data and stay zero.
type TrainingProgress struct {
	TraineeDaysCompleted   int     `json:"traineeDaysCompleted"`
	TraineeHoursCompleted  float64 `json:"traineeHoursCompleted"`
	TraineeWeeksCompleted  int     `json:"traineeWeeksCompleted"`
	MainlineDaysCompleted  int     `json:"mainlineDaysCompleted"`
	PilotDaysCompleted     int     `json:"pilotDaysCompleted"`
	AppointedDaysCompleted int     `json:"appointedDaysCompleted"`
	CorkEastCobhTrips      int     `json:"corkEastCobhTrips"`
	CorkEastMidletonTrips  int     `json:"corkEastMidletonTrips"`
	CorkEastSoloDays       int     `json:"corkEastSoloDays"`
	TraleeLearningDays     int     `json:"traleeLearningDays"`
	TraleeSoloTrips        int     `json:"traleeSoloTrips"`
}
