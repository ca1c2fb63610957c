// Package seed loads YAML fixtures of drivers and their roster entries.
package seed

import (
	"bytes"
	"context"
	"driver-training-service/internal/domain"
	"driver-training-service/internal/services"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Segment struct {
	Route          string `yaml:"route"`
	RouteType      string `yaml:"route_type"`
	DrivingHours   int    `yaml:"driving_hours"`
	DrivingMinutes int    `yaml:"driving_minutes"`
	Description    string `yaml:"description"`
}

type Entry struct {
	Date        string    `yaml:"date"`
	Duties      string    `yaml:"duties"`
	BookOnTime  string    `yaml:"book_on_time"`
	BookOffTime string    `yaml:"book_off_time"`
	Segments    []Segment `yaml:"segments"`
}

type Driver struct {
	Name         string  `yaml:"name"`
	StartDate    string  `yaml:"start_date"`
	Status       string  `yaml:"status"`
	CurrentPhase string  `yaml:"current_phase"`
	Entries      []Entry `yaml:"entries"`
}

type Fixture struct {
	Drivers []Driver `yaml:"drivers"`
}

// Target is where a fixture is applied; *store.Store satisfies it.
type Target interface {
	AddDriver(ctx context.Context, d domain.Driver) (domain.Driver, error)
	ImportRosterEntries(ctx context.Context, batch []domain.RosterEntry) ([]domain.RosterEntry, error)
}

// Counts of what Apply stored.
type Result struct {
	Drivers int
	Entries int
}

func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a fixture. Unknown keys are rejected so typos surface early.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed YAML: %w", err)
	}
	return &f, nil
}

func (d Driver) input() services.DriverInput {
	return services.DriverInput{
		Name:         d.Name,
		StartDate:    d.StartDate,
		Status:       d.Status,
		CurrentPhase: d.CurrentPhase,
	}
}

func (e Entry) input(driverID string) services.RosterEntryInput {
	segs := make([]services.SegmentInput, 0, len(e.Segments))
	for _, s := range e.Segments {
		segs = append(segs, services.SegmentInput{
			Route:          s.Route,
			RouteType:      s.RouteType,
			DrivingHours:   s.DrivingHours,
			DrivingMinutes: s.DrivingMinutes,
			Description:    s.Description,
		})
	}
	return services.RosterEntryInput{
		DriverID:    driverID,
		Date:        e.Date,
		Duties:      e.Duties,
		BookOnTime:  e.BookOnTime,
		BookOffTime: e.BookOffTime,
		Segments:    segs,
	}
}

// pendingID stands in for the driver ID while entries are validated ahead of insert.
const pendingID = "pending"

// Validate checks every driver and entry, naming the first offending index.
func (f *Fixture) Validate() error {
	for i, d := range f.Drivers {
		if _, err := services.BuildDriver(d.input()); err != nil {
			return fmt.Errorf("drivers[%d]: %w", i, err)
		}
		for j, e := range d.Entries {
			if _, err := services.BuildRosterEntry(e.input(pendingID)); err != nil {
				return fmt.Errorf("drivers[%d].entries[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

// Apply validates the fixture and stores it through target, which assigns IDs
// and recomputes totals. Nothing is stored if validation fails.
func Apply(ctx context.Context, target Target, f *Fixture) (Result, error) {
	var res Result
	if err := f.Validate(); err != nil {
		return res, fmt.Errorf("apply seed: %w", err)
	}

	for i, fd := range f.Drivers {
		d, err := services.BuildDriver(fd.input())
		if err != nil {
			return res, fmt.Errorf("apply seed: drivers[%d]: %w", i, err)
		}
		d, err = target.AddDriver(ctx, d)
		if err != nil {
			return res, fmt.Errorf("apply seed: drivers[%d]: %w", i, err)
		}
		res.Drivers++

		batch := make([]domain.RosterEntry, 0, len(fd.Entries))
		for j, fe := range fd.Entries {
			e, err := services.BuildRosterEntry(fe.input(d.ID))
			if err != nil {
				return res, fmt.Errorf("apply seed: drivers[%d].entries[%d]: %w", i, j, err)
			}
			batch = append(batch, e)
		}
		added, err := target.ImportRosterEntries(ctx, batch)
		if err != nil {
			return res, fmt.Errorf("apply seed: drivers[%d]: %w", i, err)
		}
		res.Entries += len(added)
	}

	return res, nil
}
