package services

import (
	"driver-training-service/internal/domain"
	"regexp"
	"strings"
)

// Result of classifying a free-text duty description.
// Facets are independent; RouteType is the first true facet in precedence order.
type RouteDetection struct {
	IsMainline bool
	IsPilot    bool
	IsCorkEast bool
	IsTralee   bool
	RouteType  domain.RouteType
}

var (
	mainlinePatterns = compileAll(`cork.*dublin`, `dublin.*cork`, `cork.*mallow`, `mallow.*cork`)
	pilotPatterns    = compileAll(`pilot`, `yard`, `shed`)
	corkEastPatterns = compileAll(`cork.*cobh`, `cobh.*cork`, `cork.*midleton`, `midleton.*cork`)
	traleePatterns   = compileAll(`cork.*tralee`, `tralee.*cork`, `mallow.*tralee`, `tralee.*mallow`)
)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// DetectRouteType classifies a duty description against the known corridors.
//
// Precedence for the label is mainline > pilot > cork-east > tralee > other, so
// "Cork-Dublin then shed" is mainline even though the pilot facet is also set.
// Text matching nothing yields RouteOther with every facet false.
func DetectRouteType(duties string) RouteDetection {
	d := RouteDetection{
		IsMainline: matchAny(mainlinePatterns, duties),
		IsPilot:    matchAny(pilotPatterns, duties),
		IsCorkEast: matchAny(corkEastPatterns, duties),
		IsTralee:   matchAny(traleePatterns, duties),
		RouteType:  domain.RouteOther,
	}

	switch {
	case d.IsMainline:
		d.RouteType = domain.RouteMainline
	case d.IsPilot:
		d.RouteType = domain.RoutePilot
	case d.IsCorkEast:
		d.RouteType = domain.RouteCorkEast
	case d.IsTralee:
		d.RouteType = domain.RouteTralee
	}

	return d
}

// FacetsFor returns the canonical detection for an explicitly chosen route type:
// exactly the facet matching the type is set.
func FacetsFor(rt domain.RouteType) RouteDetection {
	d := RouteDetection{RouteType: rt}
	switch rt {
	case domain.RouteMainline:
		d.IsMainline = true
	case domain.RoutePilot:
		d.IsPilot = true
	case domain.RouteCorkEast:
		d.IsCorkEast = true
	case domain.RouteTralee:
		d.IsTralee = true
	default:
		d.RouteType = domain.RouteOther
	}
	return d
}

// Segment builds a RouteSegment carrying this detection.
func (d RouteDetection) Segment(route string, hours, minutes int, description string) domain.RouteSegment {
	return domain.RouteSegment{
		Route:          route,
		RouteType:      d.RouteType,
		IsMainline:     d.IsMainline,
		IsPilot:        d.IsPilot,
		IsCorkEast:     d.IsCorkEast,
		IsTralee:       d.IsTralee,
		DrivingHours:   hours,
		DrivingMinutes: minutes,
		Description:    description,
	}
}

// IsRestDay reports whether a duty description denotes a day off.
func IsRestDay(duties string) bool {
	return strings.Contains(strings.ToLower(duties), "rest day") || strings.TrimSpace(duties) == ""
}
