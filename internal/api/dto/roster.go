package dto

import (
	"driver-training-service/internal/domain"
	"driver-training-service/internal/services"
)

type SegmentRequest struct {
	Route          string `json:"route"`
	RouteType      string `json:"route_type"`
	DrivingHours   int    `json:"driving_hours"`
	DrivingMinutes int    `json:"driving_minutes"`
	Description    string `json:"description"`
}

type CreateEntryRequest struct {
	Date        string           `json:"date"`
	Duties      string           `json:"duties"`
	BookOnTime  string           `json:"book_on_time"`
	BookOffTime string           `json:"book_off_time"`
	Segments    []SegmentRequest `json:"segments"`
}

type ImportEntriesRequest struct {
	Entries []CreateEntryRequest `json:"entries"`
}

type UpdateEntryRequest struct {
	Date        *string           `json:"date"`
	Duties      *string           `json:"duties"`
	BookOnTime  *string           `json:"book_on_time"`
	BookOffTime *string           `json:"book_off_time"`
	Segments    *[]SegmentRequest `json:"segments"`
}

type WeekDayRequest struct {
	Date        string           `json:"date"`
	DayType     string           `json:"day_type"`
	Duties      string           `json:"duties"`
	BookOnTime  string           `json:"book_on_time"`
	BookOffTime string           `json:"book_off_time"`
	Segments    []SegmentRequest `json:"segments"`
}

type WeekRequest struct {
	WeekStarting string           `json:"week_starting"`
	Days         []WeekDayRequest `json:"days"`
}

type SegmentResponse struct {
	Route          string `json:"route"`
	RouteType      string `json:"route_type"`
	IsMainline     bool   `json:"is_mainline"`
	IsPilot        bool   `json:"is_pilot"`
	IsCorkEast     bool   `json:"is_cork_east"`
	IsTralee       bool   `json:"is_tralee"`
	DrivingHours   int    `json:"driving_hours"`
	DrivingMinutes int    `json:"driving_minutes"`
	Description    string `json:"description"`
}

type EntryResponse struct {
	ID                  string            `json:"id"`
	DriverID            string            `json:"driver_id"`
	Date                string            `json:"date"`
	Duties              string            `json:"duties"`
	BookOnTime          string            `json:"book_on_time,omitempty"`
	BookOffTime         string            `json:"book_off_time,omitempty"`
	RouteSegments       []SegmentResponse `json:"route_segments"`
	TotalDrivingHours   int               `json:"total_driving_hours"`
	TotalDrivingMinutes int               `json:"total_driving_minutes"`
}

type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

type WeekSummaryResponse struct {
	WeekEnding string  `json:"week_ending"`
	WeekStart  string  `json:"week_start"`
	WeekEnd    string  `json:"week_end"`
	EntryCount int     `json:"entry_count"`
	TotalHours float64 `json:"total_hours"`
}

type ListWeeksResponse struct {
	Weeks []WeekSummaryResponse `json:"weeks"`
}

func segmentInputs(in []SegmentRequest) []services.SegmentInput {
	out := make([]services.SegmentInput, 0, len(in))
	for _, s := range in {
		out = append(out, services.SegmentInput{
			Route:          s.Route,
			RouteType:      s.RouteType,
			DrivingHours:   s.DrivingHours,
			DrivingMinutes: s.DrivingMinutes,
			Description:    s.Description,
		})
	}
	return out
}

func (r CreateEntryRequest) Input(driverID string) services.RosterEntryInput {
	return services.RosterEntryInput{
		DriverID:    driverID,
		Date:        r.Date,
		Duties:      r.Duties,
		BookOnTime:  r.BookOnTime,
		BookOffTime: r.BookOffTime,
		Segments:    segmentInputs(r.Segments),
	}
}

func (r UpdateEntryRequest) Patch() services.RosterEntryPatch {
	p := services.RosterEntryPatch{
		Date:        r.Date,
		Duties:      r.Duties,
		BookOnTime:  r.BookOnTime,
		BookOffTime: r.BookOffTime,
	}
	if r.Segments != nil {
		segs := segmentInputs(*r.Segments)
		p.Segments = &segs
	}
	return p
}

func (r WeekRequest) Input(driverID string) services.WeekInput {
	in := services.WeekInput{
		DriverID:     driverID,
		WeekStarting: r.WeekStarting,
		Days:         make([]services.WeekDayInput, 0, len(r.Days)),
	}
	for _, d := range r.Days {
		in.Days = append(in.Days, services.WeekDayInput{
			Date:        d.Date,
			DayType:     d.DayType,
			Duties:      d.Duties,
			BookOnTime:  d.BookOnTime,
			BookOffTime: d.BookOffTime,
			Segments:    segmentInputs(d.Segments),
		})
	}
	return in
}

func NewEntryResponse(e domain.RosterEntry) EntryResponse {
	segs := make([]SegmentResponse, 0, len(e.RouteSegments))
	for _, s := range e.RouteSegments {
		segs = append(segs, SegmentResponse{
			Route:          s.Route,
			RouteType:      string(s.RouteType),
			IsMainline:     s.IsMainline,
			IsPilot:        s.IsPilot,
			IsCorkEast:     s.IsCorkEast,
			IsTralee:       s.IsTralee,
			DrivingHours:   s.DrivingHours,
			DrivingMinutes: s.DrivingMinutes,
			Description:    s.Description,
		})
	}
	return EntryResponse{
		ID:                  e.ID,
		DriverID:            e.DriverID,
		Date:                e.Date,
		Duties:              e.Duties,
		BookOnTime:          e.BookOnTime,
		BookOffTime:         e.BookOffTime,
		RouteSegments:       segs,
		TotalDrivingHours:   e.TotalDrivingHours,
		TotalDrivingMinutes: e.TotalDrivingMinutes,
	}
}

func NewListEntriesResponse(entries []domain.RosterEntry) ListEntriesResponse {
	res := ListEntriesResponse{Entries: make([]EntryResponse, 0, len(entries))}
	for _, e := range entries {
		res.Entries = append(res.Entries, NewEntryResponse(e))
	}
	return res
}
