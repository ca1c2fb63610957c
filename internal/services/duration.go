package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var ErrInvalidClock = errors.New("invalid clock time")

const clockLayout = "15:04"

// ParseClock parses a 24-hour "HH:MM" value into fractional hours since midnight.
func ParseClock(s string) (float64, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, ErrInvalidClock)
	}
	return float64(t.Hour()) + float64(t.Minute())/60, nil
}

// CalculateHours returns the elapsed hours between book-on and book-off.
//
// An empty value on either side yields zero. A book-off earlier than book-on is
// treated as an overnight shift: (24 - on) + off.
func CalculateHours(bookOn, bookOff string) (float64, error) {
	if strings.TrimSpace(bookOn) == "" || strings.TrimSpace(bookOff) == "" {
		return 0, nil
	}

	start, err := ParseClock(bookOn)
	if err != nil {
		return 0, fmt.Errorf("calculate hours: book on: %w", err)
	}
	end, err := ParseClock(bookOff)
	if err != nil {
		return 0, fmt.Errorf("calculate hours: book off: %w", err)
	}

	if end < start {
		return (24 - start) + end, nil
	}
	return end - start, nil
}

// SplitHours converts fractional hours into whole hours and rounded minutes.
func SplitHours(h float64) (hours, minutes int) {
	total := int(math.Round(h * 60))
	return total / 60, total % 60
}
