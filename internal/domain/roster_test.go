package domain

import (
	"testing"
)

func TestRosterEntryRecalculateTotals(t *testing.T) {
	// build test data
	entry := &RosterEntry{
		ID:                  "e1",
		DriverID:            "d1",
		TotalDrivingHours:   99,
		TotalDrivingMinutes: 99,
		RouteSegments: []RouteSegment{
			{Route: "Cork-Dublin", DrivingHours: 2, DrivingMinutes: 45},
			{Route: "Cork Yard", DrivingHours: 1, DrivingMinutes: 30},
		},
	}

	// call the method under test
	entry.RecalculateTotals()

	// verify behavior
	if entry.TotalDrivingHours != 4 {
		t.Errorf("TotalDrivingHours = %d, want 4", entry.TotalDrivingHours)
	}
	if entry.TotalDrivingMinutes != 15 {
		t.Errorf("TotalDrivingMinutes = %d, want 15", entry.TotalDrivingMinutes)
	}
	if got := entry.DrivingHours(); got != 4.25 {
		t.Errorf("DrivingHours() = %v, want 4.25", got)
	}
}

func TestRosterEntryRecalculateTotalsNoSegments(t *testing.T) {
	entry := &RosterEntry{TotalDrivingHours: 3, TotalDrivingMinutes: 10}

	entry.RecalculateTotals()

	if entry.TotalDrivingHours != 0 || entry.TotalDrivingMinutes != 0 {
		t.Fatalf("totals = %dh%dm, want 0h0m", entry.TotalDrivingHours, entry.TotalDrivingMinutes)
	}
}

func TestRosterEntryUpdateApply(t *testing.T) {
	entry := RosterEntry{
		Date:          "2024-01-02",
		Duties:        "Cork-Dublin",
		RouteSegments: []RouteSegment{{Route: "Cork-Dublin"}},
	}

	duties := "Cork Yard pilot"
	segments := []RouteSegment{{Route: "Cork Yard"}, {Route: "Cork Shed"}}
	RosterEntryUpdate{Duties: &duties, RouteSegments: &segments}.Apply(&entry)

	if entry.Date != "2024-01-02" {
		t.Errorf("Date changed to %q", entry.Date)
	}
	if entry.Duties != duties {
		t.Errorf("Duties = %q, want %q", entry.Duties, duties)
	}
	if len(entry.RouteSegments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(entry.RouteSegments))
	}

	// the entry must not alias the caller's slice
	segments[0].Route = "mutated"
	if entry.RouteSegments[0].Route != "Cork Yard" {
		t.Errorf("segment aliased caller slice: %q", entry.RouteSegments[0].Route)
	}
}

func TestParsePhaseAndStatus(t *testing.T) {
	if p, err := ParsePhase("tralee-solo"); err != nil || p != PhaseTraleeSolo {
		t.Fatalf("ParsePhase(tralee-solo) = %q, %v", p, err)
	}
	if _, err := ParsePhase("unknown-phase"); err == nil {
		t.Fatal("expected error for unknown phase")
	}
	if s, err := ParseStatus("qualified"); err != nil || s != StatusQualified {
		t.Fatalf("ParseStatus(qualified) = %q, %v", s, err)
	}
	if _, err := ParseStatus("retired"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
