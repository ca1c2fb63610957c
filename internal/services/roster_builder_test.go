package services

import (
	"driver-training-service/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRosterEntryDerivesSegmentFromDuties(t *testing.T) {
	entry, err := BuildRosterEntry(RosterEntryInput{
		DriverID:    "d1",
		Date:        "2024-01-02",
		Duties:      "Cork-Dublin 07:00",
		BookOnTime:  "06:30",
		BookOffTime: "15:15",
	})
	require.NoError(t, err)

	require.Len(t, entry.RouteSegments, 1)
	s := entry.RouteSegments[0]
	assert.Equal(t, domain.RouteMainline, s.RouteType)
	assert.True(t, s.IsMainline)
	assert.Equal(t, "Cork-Dublin 07:00", s.Route)
	assert.Equal(t, 8, s.DrivingHours)
	assert.Equal(t, 45, s.DrivingMinutes)
	assert.Equal(t, 8, entry.TotalDrivingHours)
	assert.Equal(t, 45, entry.TotalDrivingMinutes)
}

func TestBuildRosterEntryExplicitSegments(t *testing.T) {
	entry, err := BuildRosterEntry(RosterEntryInput{
		DriverID: "d1",
		Date:     "2024-01-02",
		Duties:   "Split turn",
		Segments: []SegmentInput{
			{Route: "Cork-Cobh", DrivingHours: 0, DrivingMinutes: 50},
			{Route: "Relief", RouteType: "pilot", DrivingHours: 1, DrivingMinutes: 20, Description: "shunt"},
		},
	})
	require.NoError(t, err)

	require.Len(t, entry.RouteSegments, 2)
	assert.Equal(t, domain.RouteCorkEast, entry.RouteSegments[0].RouteType)
	assert.Equal(t, "Cork-Cobh", entry.RouteSegments[0].Description)
	assert.Equal(t, domain.RoutePilot, entry.RouteSegments[1].RouteType)
	assert.True(t, entry.RouteSegments[1].IsPilot)
	assert.Equal(t, "shunt", entry.RouteSegments[1].Description)
	assert.Equal(t, 2, entry.TotalDrivingHours)
	assert.Equal(t, 10, entry.TotalDrivingMinutes)
}

func TestBuildRosterEntryRestDayHasNoSegments(t *testing.T) {
	entry, err := BuildRosterEntry(RosterEntryInput{DriverID: "d1", Date: "2024-01-07", Duties: "Rest day"})
	require.NoError(t, err)

	assert.Empty(t, entry.RouteSegments)
	assert.Zero(t, entry.TotalDrivingHours)
}

func TestBuildRosterEntryValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    RosterEntryInput
		field string
	}{
		{name: "missing driver", in: RosterEntryInput{Date: "2024-01-02", Duties: "x"}, field: "driver_id"},
		{name: "missing date", in: RosterEntryInput{DriverID: "d1", Duties: "x"}, field: "date"},
		{name: "bad date", in: RosterEntryInput{DriverID: "d1", Date: "02/01/2024", Duties: "x"}, field: "date"},
		{name: "missing duties", in: RosterEntryInput{DriverID: "d1", Date: "2024-01-02"}, field: "duties"},
		{name: "bad book on", in: RosterEntryInput{DriverID: "d1", Date: "2024-01-02", Duties: "x", BookOnTime: "7"}, field: "book_on_time"},
		{name: "bad segment minutes", in: RosterEntryInput{DriverID: "d1", Date: "2024-01-02", Segments: []SegmentInput{{Route: "Cork-Cobh", DrivingMinutes: 75}}}, field: "segments[0]"},
		{name: "bad route type", in: RosterEntryInput{DriverID: "d1", Date: "2024-01-02", Segments: []SegmentInput{{Route: "x", RouteType: "branch"}}}, field: "segments[0].route_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRosterEntry(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestBuildWeek(t *testing.T) {
	entries, err := BuildWeek(WeekInput{
		DriverID:     "d1",
		WeekStarting: "2024-01-01",
		Days: []WeekDayInput{
			{
				Date: "2024-01-01", DayType: DayTypeWork, Duties: "Cork-Dublin",
				BookOnTime: "06:00", BookOffTime: "14:00",
				Segments: []SegmentInput{{Route: "Cork-Dublin", DrivingHours: 2, DrivingMinutes: 40}, {Route: "Dublin-Cork", DrivingHours: 2, DrivingMinutes: 35}},
			},
			{Date: "2024-01-02", DayType: DayTypeRest},
			{Date: "", DayType: DayTypeWork, Duties: "ignored"},
		},
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "06:00 Book On - Cork-Dublin - 14:00 Book Off", entries[0].Duties)
	assert.Len(t, entries[0].RouteSegments, 2)
	assert.Equal(t, 5, entries[0].TotalDrivingHours)
	assert.Equal(t, 15, entries[0].TotalDrivingMinutes)

	assert.Equal(t, "Rest Day - No Duties", entries[1].Duties)
	assert.Empty(t, entries[1].RouteSegments)
}

func TestBuildWeekRequiresMonday(t *testing.T) {
	_, err := BuildWeek(WeekInput{DriverID: "d1", WeekStarting: "2024-01-03"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, err.Error(), "Monday")
}

func TestBuildWeekPrefixesDayErrors(t *testing.T) {
	_, err := BuildWeek(WeekInput{
		DriverID: "d1",
		Days:     []WeekDayInput{{Date: "2024-01-01"}, {Date: "2024-01-02", BookOnTime: "xx:yy"}},
	})

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "days[1].book_on_time", ve.Field)
}

func TestBuildRosterEntryUpdate(t *testing.T) {
	on := "06:45"
	segs := []SegmentInput{{Route: "Cork - Cobh", DrivingHours: 1, DrivingMinutes: 10}}

	upd, err := BuildRosterEntryUpdate(RosterEntryPatch{BookOnTime: &on, Segments: &segs})
	require.NoError(t, err)
	require.NotNil(t, upd.BookOnTime)
	assert.Equal(t, "06:45", *upd.BookOnTime)
	assert.Nil(t, upd.Date)
	require.NotNil(t, upd.RouteSegments)
	require.Len(t, *upd.RouteSegments, 1)
	assert.True(t, (*upd.RouteSegments)[0].IsCorkEast)

	bad := "6.45"
	_, err = BuildRosterEntryUpdate(RosterEntryPatch{BookOffTime: &bad})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "book_off_time", ve.Field)
}

func TestBuildRosterEntryUpdateFlagsDerivation(t *testing.T) {
	duties := "Cork - Dublin"
	upd, err := BuildRosterEntryUpdate(RosterEntryPatch{Duties: &duties})
	require.NoError(t, err)
	assert.True(t, upd.DeriveSegments)
	assert.Nil(t, upd.RouteSegments)

	date := "2024-01-03"
	upd, err = BuildRosterEntryUpdate(RosterEntryPatch{Date: &date})
	require.NoError(t, err)
	assert.False(t, upd.DeriveSegments, "a date-only edit keeps the segments")

	segs := []SegmentInput{{Route: "Cork - Cobh", DrivingHours: 1}}
	upd, err = BuildRosterEntryUpdate(RosterEntryPatch{Duties: &duties, Segments: &segs})
	require.NoError(t, err)
	assert.False(t, upd.DeriveSegments, "explicit segments win")
}

func TestDeriveSegments(t *testing.T) {
	segs, err := DeriveSegments(" Cork - Dublin ", "07:00", "15:30")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, domain.RouteMainline, segs[0].RouteType)
	assert.Equal(t, "Cork - Dublin", segs[0].Route)
	assert.Equal(t, 8, segs[0].DrivingHours)
	assert.Equal(t, 30, segs[0].DrivingMinutes)

	segs, err = DeriveSegments("Rest Day", "", "")
	require.NoError(t, err)
	assert.Empty(t, segs)

	_, err = DeriveSegments("Cork Yard", "7am", "09:00")
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "book_on_time", ve.Field)
}
