package dto

import (
	"driver-training-service/internal/domain"
	"driver-training-service/internal/services"
)

type CreateDriverRequest struct {
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	Status       string `json:"status"`
	CurrentPhase string `json:"current_phase"`
}

type UpdateDriverRequest struct {
	Name         *string `json:"name"`
	StartDate    *string `json:"start_date"`
	Status       *string `json:"status"`
	CurrentPhase *string `json:"current_phase"`
}

type DriverResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	Status       string `json:"status"`
	CurrentPhase string `json:"current_phase"`
}

type ListDriversResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

func NewDriverResponse(d domain.Driver) DriverResponse {
	return DriverResponse{
		ID:           d.ID,
		Name:         d.Name,
		StartDate:    d.StartDate,
		Status:       string(d.Status),
		CurrentPhase: string(d.CurrentPhase),
	}
}

func (r CreateDriverRequest) Input() services.DriverInput {
	return services.DriverInput{
		Name:         r.Name,
		StartDate:    r.StartDate,
		Status:       r.Status,
		CurrentPhase: r.CurrentPhase,
	}
}

func (r UpdateDriverRequest) Patch() services.DriverPatch {
	return services.DriverPatch{
		Name:         r.Name,
		StartDate:    r.StartDate,
		Status:       r.Status,
		CurrentPhase: r.CurrentPhase,
	}
}
