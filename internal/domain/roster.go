package domain

// Category assigned to a route segment by the classifier.
type RouteType string

const (
	RouteMainline RouteType = "mainline"
	RoutePilot    RouteType = "pilot"
	RouteCorkEast RouteType = "cork-east"
	RouteTralee   RouteType = "tralee"
	RouteOther    RouteType = "other"
)

// Represents one classified leg of a day's duty.
// The four facet flags normally agree with RouteType, but imported data may
// carry them independently and the progress counters read the flags, not the label.
type RouteSegment struct {
	Route          string    `json:"route"`
	RouteType      RouteType `json:"routeType"`
	IsMainline     bool      `json:"isMainline"`
	IsPilot        bool      `json:"isPilot"`
	IsCorkEast     bool      `json:"isCorkEast"`
	IsTralee       bool      `json:"isTralee"`
	DrivingHours   int       `json:"drivingHours"`
	DrivingMinutes int       `json:"drivingMinutes"`
	Description    string    `json:"description"`
}

// TotalMinutes returns the segment's driving time in whole minutes.
func (s RouteSegment) TotalMinutes() int {
	return s.DrivingHours*60 + s.DrivingMinutes
}

// Represents a single rostered day for a driver.
// TotalDrivingHours/TotalDrivingMinutes cache the sum over RouteSegments and
// are rewritten by RecalculateTotals whenever the entry is stored.
type RosterEntry struct {
	ID                  string         `json:"id"`
	DriverID            string         `json:"driverId"`
	Date                string         `json:"date"`
	Duties              string         `json:"duties"`
	BookOnTime          string         `json:"bookOnTime,omitempty"`
	BookOffTime         string         `json:"bookOffTime,omitempty"`
	RouteSegments       []RouteSegment `json:"routeSegments"`
	TotalDrivingHours   int            `json:"totalDrivingHours"`
	TotalDrivingMinutes int            `json:"totalDrivingMinutes"`
}

// RecalculateTotals rewrites the cached driving totals from the segments.
func (e *RosterEntry) RecalculateTotals() {
	total := 0
	for _, s := range e.RouteSegments {
		total += s.TotalMinutes()
	}
	e.TotalDrivingHours = total / 60
	e.TotalDrivingMinutes = total % 60
}

// DrivingHours returns the cached total as fractional hours.
func (e RosterEntry) DrivingHours() float64 {
	return float64(e.TotalDrivingHours) + float64(e.TotalDrivingMinutes)/60
}

// HasSegment reports whether any segment satisfies pred.
func (e RosterEntry) HasSegment(pred func(RouteSegment) bool) bool {
	for _, s := range e.RouteSegments {
		if pred(s) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slice storage with e.
func (e RosterEntry) Clone() RosterEntry {
	out := e
	if e.RouteSegments != nil {
		out.RouteSegments = append([]RouteSegment(nil), e.RouteSegments...)
	}
	return out
}

// Partial update of a RosterEntry. Nil fields are left untouched.
// Setting RouteSegments replaces the whole segment list.
type RosterEntryUpdate struct {
	Date          *string
	Duties        *string
	BookOnTime    *string
	BookOffTime   *string
	RouteSegments *[]RouteSegment

	// DeriveSegments replaces the segments with the one implied by the
	// updated duties and times. Ignored when RouteSegments is set.
	DeriveSegments bool
}

// Apply copies the set fields of u onto e.
func (u RosterEntryUpdate) Apply(e *RosterEntry) {
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Duties != nil {
		e.Duties = *u.Duties
	}
	if u.BookOnTime != nil {
		e.BookOnTime = *u.BookOnTime
	}
	if u.BookOffTime != nil {
		e.BookOffTime = *u.BookOffTime
	}
	if u.RouteSegments != nil {
		e.RouteSegments = append([]RouteSegment(nil), (*u.RouteSegments)...)
	}
}
