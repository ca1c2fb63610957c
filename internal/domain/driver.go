package domain

import (
	"fmt"
	"strings"
)

// Overall employment status of a driver.
type DriverStatus string

const (
	StatusTrainee   DriverStatus = "trainee"
	StatusAppointed DriverStatus = "appointed"
	StatusQualified DriverStatus = "qualified"
	StatusMainline  DriverStatus = "mainline"
)

var validStatuses = map[DriverStatus]bool{
	StatusTrainee:   true,
	StatusAppointed: true,
	StatusQualified: true,
	StatusMainline:  true,
}

// ParseStatus validates a status string supplied at the API boundary.
func ParseStatus(s string) (DriverStatus, error) {
	st := DriverStatus(strings.TrimSpace(s))
	if !validStatuses[st] {
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", s))
	}
	return st, nil
}

// Represents a trainee (or qualified) driver tracked by the store.
// StartDate is a calendar date in YYYY-MM-DD form.
type Driver struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	StartDate    string        `json:"startDate"`
	Status       DriverStatus  `json:"status"`
	CurrentPhase TrainingPhase `json:"currentPhase"`
}

// Partial update of a Driver. Nil fields are left untouched.
type DriverUpdate struct {
	Name         *string
	StartDate    *string
	Status       *DriverStatus
	CurrentPhase *TrainingPhase
}

// Apply copies the set fields of u onto d.
func (u DriverUpdate) Apply(d *Driver) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.StartDate != nil {
		d.StartDate = *u.StartDate
	}
	if u.Status != nil {
		d.Status = *u.Status
	}
	if u.CurrentPhase != nil {
		d.CurrentPhase = *u.CurrentPhase
	}
}
