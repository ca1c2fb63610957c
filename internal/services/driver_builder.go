package services

import (
	"driver-training-service/internal/domain"
	"strings"
)

// Form input for a new driver. Status and CurrentPhase default to trainee.
type DriverInput struct {
	Name         string
	StartDate    string
	Status       string
	CurrentPhase string
}

// BuildDriver validates driver input. The returned driver has no ID.
func BuildDriver(in DriverInput) (domain.Driver, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Driver{}, domain.NewValidationError("name", "is required")
	}
	if _, err := domain.ParseDate("start_date", in.StartDate); err != nil {
		return domain.Driver{}, err
	}

	status := domain.StatusTrainee
	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return domain.Driver{}, err
		}
		status = st
	}

	phase := domain.PhaseTrainee
	if in.CurrentPhase != "" {
		p, err := domain.ParsePhase(in.CurrentPhase)
		if err != nil {
			return domain.Driver{}, err
		}
		phase = p
	}

	return domain.Driver{
		Name:         name,
		StartDate:    in.StartDate,
		Status:       status,
		CurrentPhase: phase,
	}, nil
}

// Partial driver update as submitted by a client; nil fields are left alone.
type DriverPatch struct {
	Name         *string
	StartDate    *string
	Status       *string
	CurrentPhase *string
}

// BuildDriverUpdate validates the fields present in p.
func BuildDriverUpdate(p DriverPatch) (domain.DriverUpdate, error) {
	var upd domain.DriverUpdate

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return upd, domain.NewValidationError("name", "must not be empty")
		}
		upd.Name = &name
	}
	if p.StartDate != nil {
		if _, err := domain.ParseDate("start_date", *p.StartDate); err != nil {
			return upd, err
		}
		upd.StartDate = p.StartDate
	}
	if p.Status != nil {
		st, err := domain.ParseStatus(*p.Status)
		if err != nil {
			return upd, err
		}
		upd.Status = &st
	}
	if p.CurrentPhase != nil {
		ph, err := domain.ParsePhase(*p.CurrentPhase)
		if err != nil {
			return upd, err
		}
		upd.CurrentPhase = &ph
	}

	return upd, nil
}
