// Package schedule computes the weekly reset grid between two instants.
package schedule

import "time"

// Weekly reset anchor, always UTC
const (
	ResetWeekday = time.Tuesday
	ResetHour    = 17
)

// ResetPeriod is the exact elapsed time between resets. Added with time.Add so
// calendar and daylight-saving rules never shift the grid.
const ResetPeriod = 7 * 24 * time.Hour

// SeasonEnd is the last reset of the Season of Dawn
var SeasonEnd = time.Date(2020, time.March, 10, ResetHour, 0, 0, 0, time.UTC)

// NextReset returns the nearest reset strictly after from
func NextReset(from time.Time) time.Time {
	from = from.UTC()
	daysAhead := (int(ResetWeekday) - int(from.Weekday()) + 7) % 7
	next := time.Date(from.Year(), from.Month(), from.Day()+daysAhead, ResetHour, 0, 0, 0, time.UTC)
	if !next.After(from) {
		next = next.Add(ResetPeriod)
	}
	return next
}

// GenerateCheckpoints returns every reset t with from < t < to, in order.
// An inverted or empty range yields no checkpoints.
func GenerateCheckpoints(from, to time.Time) []time.Time {
	var resets []time.Time
	for t := NextReset(from); t.Before(to); t = t.Add(ResetPeriod) {
		resets = append(resets, t)
	}
	return resets
}

// ResetWindow returns the week that begins at start
func ResetWindow(start time.Time) (time.Time, time.Time) {
	return start, start.Add(ResetPeriod)
}
