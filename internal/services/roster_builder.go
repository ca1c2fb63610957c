package services

import (
	"driver-training-service/internal/domain"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Client-supplied route segment. RouteType is optional; when empty the route
// label is classified with DetectRouteType.
type SegmentInput struct {
	Route          string
	RouteType      string
	DrivingHours   int
	DrivingMinutes int
	Description    string
}

// Form input for a single roster day.
type RosterEntryInput struct {
	DriverID    string
	Date        string
	Duties      string
	BookOnTime  string
	BookOffTime string
	Segments    []SegmentInput
}

// BuildRosterEntry validates form input and derives the entry's route segments.
//
// Explicit segments are classified one by one. Without them, a single segment is
// derived from the duty text and the book-on/book-off duration; rest days get none.
// The returned entry has no ID and its driving totals are already consistent.
func BuildRosterEntry(in RosterEntryInput) (domain.RosterEntry, error) {
	if strings.TrimSpace(in.DriverID) == "" {
		return domain.RosterEntry{}, domain.NewValidationError("driver_id", "is required")
	}
	if _, err := domain.ParseDate("date", in.Date); err != nil {
		return domain.RosterEntry{}, err
	}
	duties := strings.TrimSpace(in.Duties)
	if duties == "" && len(in.Segments) == 0 {
		return domain.RosterEntry{}, domain.NewValidationError("duties", "is required")
	}

	hours, err := shiftHours(in.BookOnTime, in.BookOffTime)
	if err != nil {
		return domain.RosterEntry{}, err
	}

	entry := domain.RosterEntry{
		DriverID:    in.DriverID,
		Date:        in.Date,
		Duties:      duties,
		BookOnTime:  strings.TrimSpace(in.BookOnTime),
		BookOffTime: strings.TrimSpace(in.BookOffTime),
	}

	switch {
	case len(in.Segments) > 0:
		segs, err := BuildSegments(in.Segments)
		if err != nil {
			return domain.RosterEntry{}, err
		}
		entry.RouteSegments = segs
	default:
		entry.RouteSegments = deriveSegments(duties, hours)
	}

	entry.RecalculateTotals()
	return entry, nil
}

// BuildSegments validates and classifies client-supplied segments.
func BuildSegments(in []SegmentInput) ([]domain.RouteSegment, error) {
	out := make([]domain.RouteSegment, 0, len(in))
	for i, s := range in {
		field := fmt.Sprintf("segments[%d]", i)

		route := strings.TrimSpace(s.Route)
		if route == "" {
			return nil, domain.NewValidationError(field+".route", "is required")
		}
		if s.DrivingHours < 0 || s.DrivingMinutes < 0 || s.DrivingMinutes >= 60 {
			return nil, domain.NewValidationError(field, "driving time must be non-negative with minutes below 60")
		}

		var det RouteDetection
		if s.RouteType == "" {
			det = DetectRouteType(route)
		} else {
			rt, err := parseRouteType(s.RouteType)
			if err != nil {
				return nil, domain.NewValidationError(field+".route_type", err.Error())
			}
			det = FacetsFor(rt)
		}

		desc := strings.TrimSpace(s.Description)
		if desc == "" {
			desc = route
		}
		out = append(out, det.Segment(route, s.DrivingHours, s.DrivingMinutes, desc))
	}
	return out, nil
}

func parseRouteType(s string) (domain.RouteType, error) {
	switch rt := domain.RouteType(s); rt {
	case domain.RouteMainline, domain.RoutePilot, domain.RouteCorkEast, domain.RouteTralee, domain.RouteOther:
		return rt, nil
	}
	return "", fmt.Errorf("unknown route type %q", s)
}

// DeriveSegments rebuilds the single segment implied by the duty text and the
// book-on/book-off duration. Rest days yield an empty slice.
func DeriveSegments(duties, bookOn, bookOff string) ([]domain.RouteSegment, error) {
	hours, err := shiftHours(bookOn, bookOff)
	if err != nil {
		return nil, err
	}
	return deriveSegments(strings.TrimSpace(duties), hours), nil
}

func deriveSegments(duties string, hours float64) []domain.RouteSegment {
	if IsRestDay(duties) {
		return []domain.RouteSegment{}
	}
	h, m := SplitHours(hours)
	return []domain.RouteSegment{DetectRouteType(duties).Segment(duties, h, m, duties)}
}

func shiftHours(bookOn, bookOff string) (float64, error) {
	for _, c := range []struct{ field, value string }{{"book_on_time", bookOn}, {"book_off_time", bookOff}} {
		if strings.TrimSpace(c.value) == "" {
			continue
		}
		if _, err := ParseClock(c.value); err != nil {
			return 0, domain.NewValidationError(c.field, fmt.Sprintf("expected HH:MM, got %q", c.value))
		}
	}

	h, err := CalculateHours(bookOn, bookOff)
	if err != nil {
		return 0, fmt.Errorf("shift hours: %w", err)
	}
	return h, nil
}

const (
	DayTypeWork = "work"
	DayTypeRest = "rest"

	restDayDuties = "Rest Day - No Duties"
)

// One day of the weekly roster builder.
type WeekDayInput struct {
	Date        string
	DayType     string
	Duties      string
	BookOnTime  string
	BookOffTime string
	Segments    []SegmentInput
}

// A week of roster days entered together.
type WeekInput struct {
	DriverID     string
	WeekStarting string
	Days         []WeekDayInput
}

// BuildWeek turns a weekly roster sheet into roster entries.
//
// WeekStarting, when given, must be a Monday. Days without a date are skipped.
// Rest days are stored with fixed duty text and no segments; work days record the
// booking times in the duty text and keep their explicit segments.
func BuildWeek(in WeekInput) ([]domain.RosterEntry, error) {
	if strings.TrimSpace(in.DriverID) == "" {
		return nil, domain.NewValidationError("driver_id", "is required")
	}
	if in.WeekStarting != "" {
		start, err := domain.ParseDate("week_starting", in.WeekStarting)
		if err != nil {
			return nil, err
		}
		if start.Weekday() != time.Monday {
			return nil, domain.NewValidationError("week_starting", "week must start on a Monday")
		}
	}

	entries := make([]domain.RosterEntry, 0, len(in.Days))
	for i, day := range in.Days {
		if day.Date == "" {
			continue
		}
		field := fmt.Sprintf("days[%d]", i)

		if _, err := domain.ParseDate(field+".date", day.Date); err != nil {
			return nil, err
		}
		if _, err := shiftHours(day.BookOnTime, day.BookOffTime); err != nil {
			return nil, prefixField(field, err)
		}

		entry := domain.RosterEntry{
			DriverID:      in.DriverID,
			Date:          day.Date,
			BookOnTime:    strings.TrimSpace(day.BookOnTime),
			BookOffTime:   strings.TrimSpace(day.BookOffTime),
			RouteSegments: []domain.RouteSegment{},
		}

		switch day.DayType {
		case DayTypeRest:
			entry.Duties = restDayDuties
		case DayTypeWork, "":
			if d := strings.TrimSpace(day.Duties); d != "" {
				entry.Duties = fmt.Sprintf("%s Book On - %s - %s Book Off", entry.BookOnTime, d, entry.BookOffTime)
			}
			segs, err := BuildSegments(day.Segments)
			if err != nil {
				return nil, prefixField(field, err)
			}
			entry.RouteSegments = segs
		default:
			return nil, domain.NewValidationError(field+".day_type", fmt.Sprintf("unknown day type %q", day.DayType))
		}

		entry.RecalculateTotals()
		entries = append(entries, entry)
	}

	return entries, nil
}

func prefixField(prefix string, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return domain.NewValidationError(prefix+"."+ve.Field, ve.Reason)
	}
	return err
}

// Partial roster entry update as submitted by a client; nil fields are left alone.
type RosterEntryPatch struct {
	Date        *string
	Duties      *string
	BookOnTime  *string
	BookOffTime *string
	Segments    *[]SegmentInput
}

// BuildRosterEntryUpdate validates the fields present in p and classifies any
// replacement segments. A change to duties or times without explicit segments
// asks the store to derive the segment again from the merged entry.
func BuildRosterEntryUpdate(p RosterEntryPatch) (domain.RosterEntryUpdate, error) {
	var upd domain.RosterEntryUpdate

	if p.Date != nil {
		if _, err := domain.ParseDate("date", *p.Date); err != nil {
			return upd, err
		}
		upd.Date = p.Date
	}
	if p.Duties != nil {
		duties := strings.TrimSpace(*p.Duties)
		if duties == "" {
			return upd, domain.NewValidationError("duties", "must not be empty")
		}
		upd.Duties = &duties
	}
	for _, c := range []struct {
		field string
		value *string
		dst   **string
	}{
		{"book_on_time", p.BookOnTime, &upd.BookOnTime},
		{"book_off_time", p.BookOffTime, &upd.BookOffTime},
	} {
		if c.value == nil {
			continue
		}
		v := strings.TrimSpace(*c.value)
		if v != "" {
			if _, err := ParseClock(v); err != nil {
				return upd, domain.NewValidationError(c.field, fmt.Sprintf("expected HH:MM, got %q", v))
			}
		}
		*c.dst = &v
	}
	if p.Segments != nil {
		segs, err := BuildSegments(*p.Segments)
		if err != nil {
			return upd, err
		}
		upd.RouteSegments = &segs
	} else if p.Duties != nil || p.BookOnTime != nil || p.BookOffTime != nil {
		upd.DeriveSegments = true
	}

	return upd, nil
}
