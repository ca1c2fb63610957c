package report

import (
	"driver-training-service/internal/domain"
	"fmt"
	"sort"
	"time"
)

// WeekBounds returns the Monday and Sunday of the week containing day.
func WeekBounds(day time.Time) (monday, sunday time.Time) {
	offset := (int(day.Weekday()) + 6) % 7
	monday = time.Date(day.Year(), day.Month(), day.Day()-offset, 0, 0, 0, 0, time.UTC)
	return monday, monday.AddDate(0, 0, 6)
}

// One week that has roster entries, as offered for weekly export.
type WeekSummary struct {
	WeekEnding string
	WeekStart  string
	WeekEnd    string
	EntryCount int
	TotalHours float64
}

// AvailableWeeks groups entries by the Sunday ending their Monday-start week,
// newest week first. Entries with unparsable dates are skipped.
func AvailableWeeks(entries []domain.RosterEntry) []WeekSummary {
	type acc struct {
		monday, sunday time.Time
		count          int
		minutes        int
	}
	weeks := map[string]*acc{}

	for _, e := range entries {
		day, err := time.Parse(domain.DateLayout, e.Date)
		if err != nil {
			continue
		}
		monday, sunday := WeekBounds(day)
		key := sunday.Format(domain.DateLayout)

		a, ok := weeks[key]
		if !ok {
			a = &acc{monday: monday, sunday: sunday}
			weeks[key] = a
		}
		a.count++
		a.minutes += e.TotalDrivingHours*60 + e.TotalDrivingMinutes
	}

	out := make([]WeekSummary, 0, len(weeks))
	for key, a := range weeks {
		out = append(out, WeekSummary{
			WeekEnding: key,
			WeekStart:  a.monday.Format("02 Jan 2006"),
			WeekEnd:    a.sunday.Format("02 Jan 2006"),
			EntryCount: a.count,
			TotalHours: float64(a.minutes) / 60,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekEnding > out[j].WeekEnding })

	return out
}

// EntriesForWeek returns the entries in the Monday-Sunday week containing
// weekEnding, the same week the weekly roster PDF covers.
func EntriesForWeek(entries []domain.RosterEntry, weekEnding string) ([]domain.RosterEntry, error) {
	day, err := domain.ParseDate("week_ending", weekEnding)
	if err != nil {
		return nil, fmt.Errorf("entries for week: %w", err)
	}
	monday, sunday := WeekBounds(day)
	return entriesBetween(entries, monday, sunday), nil
}

func entriesBetween(entries []domain.RosterEntry, start, end time.Time) []domain.RosterEntry {
	out := []domain.RosterEntry{}
	for _, e := range entries {
		day, err := time.Parse(domain.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			out = append(out, e)
		}
	}
	return out
}
