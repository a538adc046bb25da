package services

import (
	"time"

	"spice-garden/models"
)

// Serving windows in minutes since midnight, inclusive of both endpoints.
type servingWindow struct {
	startMin int
	endMin   int
}

var servingWindows = map[string]servingWindow{
	models.PeriodBreakfast: {7*60 + 30, 10*60 + 30},
	models.PeriodLunch:     {12 * 60, 14 * 60},
	models.PeriodDinner:    {19 * 60, 21 * 60},
}

// IsServing reports whether the given period is being served at now.
// Comparison is at minute granularity; seconds are truncated. Unknown
// periods are never being served.
func IsServing(period string, now time.Time) bool {
	w, ok := servingWindows[period]
	if !ok {
		return false
	}
	m := now.Hour()*60 + now.Minute()
	return m >= w.startMin && m <= w.endMin
}

var servingHoursText = map[string]string{
	models.PeriodBreakfast: "7:30 AM – 10:30 AM",
	models.PeriodLunch:     "12:00 PM – 2:00 PM",
	models.PeriodDinner:    "7:00 PM – 9:00 PM",
}

// ServingHours returns the human-readable hours for a period, as printed in
// the meal-inquiry reply.
func ServingHours(period string) string {
	return servingHoursText[period]
}
