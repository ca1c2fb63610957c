package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHours(t *testing.T) {
	tests := []struct {
		name    string
		on, off string
		want    float64
	}{
		{name: "day shift", on: "09:00", off: "17:00", want: 8},
		{name: "overnight wrap", on: "22:00", off: "06:00", want: 8},
		{name: "missing book on", on: "", off: "17:00", want: 0},
		{name: "missing book off", on: "09:00", off: "", want: 0},
		{name: "half hour", on: "07:15", off: "11:45", want: 4.5},
		{name: "same time", on: "10:00", off: "10:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateHours(tt.on, tt.off)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculateHoursRejectsMalformedClock(t *testing.T) {
	for _, tc := range [][2]string{{"9am", "17:00"}, {"09:00", "25:00"}, {"09:00", "17:75"}} {
		_, err := CalculateHours(tc[0], tc[1])
		require.Error(t, err, tc)
		assert.True(t, errors.Is(err, ErrInvalidClock), "err = %v", err)
	}
}

func TestSplitHours(t *testing.T) {
	h, m := SplitHours(4.5)
	assert.Equal(t, 4, h)
	assert.Equal(t, 30, m)

	// 7h59m59s rounds up into the next hour instead of producing 60 minutes
	h, m = SplitHours(7 + 59.99/60)
	assert.Equal(t, 8, h)
	assert.Equal(t, 0, m)
}
