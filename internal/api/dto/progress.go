package dto

import "driver-training-service/internal/domain"

type TrainingProgressResponse struct {
	TraineeDaysCompleted   int     `json:"trainee_days_completed"`
	TraineeHoursCompleted  float64 `json:"trainee_hours_completed"`
	TraineeWeeksCompleted  int     `json:"trainee_weeks_completed"`
	MainlineDaysCompleted  int     `json:"mainline_days_completed"`
	PilotDaysCompleted     int     `json:"pilot_days_completed"`
	AppointedDaysCompleted int     `json:"appointed_days_completed"`
	CorkEastCobhTrips      int     `json:"cork_east_cobh_trips"`
	CorkEastMidletonTrips  int     `json:"cork_east_midleton_trips"`
	CorkEastSoloDays       int     `json:"cork_east_solo_days"`
	TraleeLearningDays     int     `json:"tralee_learning_days"`
	TraleeSoloTrips        int     `json:"tralee_solo_trips"`
}

type RequirementsResponse struct {
	TotalDays             int `json:"total_days"`
	MainlineDays          int `json:"mainline_days"`
	TotalHours            int `json:"total_hours"`
	PilotDays             int `json:"pilot_days"`
	CorkEastCobhTrips     int `json:"cork_east_cobh_trips"`
	CorkEastMidletonTrips int `json:"cork_east_midleton_trips"`
	TraleeLearningDays    int `json:"tralee_learning_days"`
}

type ProgressResponse struct {
	DriverID     string                   `json:"driver_id"`
	CurrentPhase string                   `json:"current_phase"`
	Progress     TrainingProgressResponse `json:"progress"`
	Percentage   float64                  `json:"percentage"`
	NextPhase    string                   `json:"next_phase"`
	CanAdvance   bool                     `json:"can_advance"`
	Requirements *RequirementsResponse    `json:"requirements"`
}

type MailtoResponse struct {
	Mailto string `json:"mailto"`
}

func NewTrainingProgressResponse(p domain.TrainingProgress) TrainingProgressResponse {
	return TrainingProgressResponse{
		TraineeDaysCompleted:   p.TraineeDaysCompleted,
		TraineeHoursCompleted:  p.TraineeHoursCompleted,
		TraineeWeeksCompleted:  p.TraineeWeeksCompleted,
		MainlineDaysCompleted:  p.MainlineDaysCompleted,
		PilotDaysCompleted:     p.PilotDaysCompleted,
		AppointedDaysCompleted: p.AppointedDaysCompleted,
		CorkEastCobhTrips:      p.CorkEastCobhTrips,
		CorkEastMidletonTrips:  p.CorkEastMidletonTrips,
		CorkEastSoloDays:       p.CorkEastSoloDays,
		TraleeLearningDays:     p.TraleeLearningDays,
		TraleeSoloTrips:        p.TraleeSoloTrips,
	}
}

// NewRequirementsResponse returns nil when the phase has no requirement bundle.
func NewRequirementsResponse(phase domain.TrainingPhase) *RequirementsResponse {
	r, ok := domain.RequirementsFor(phase)
	if !ok {
		return nil
	}
	return &RequirementsResponse{
		TotalDays:             r.TotalDays,
		MainlineDays:          r.MainlineDays,
		TotalHours:            r.TotalHours,
		PilotDays:             r.PilotDays,
		CorkEastCobhTrips:     r.CorkEastCobhTrips,
		CorkEastMidletonTrips: r.CorkEastMidletonTrips,
		TraleeLearningDays:    r.TraleeLearningDays,
	}
}
