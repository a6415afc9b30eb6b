// Package valueobject defines immutable value types shared across the domain.
package valueobject

import "time"

// Interval is an inclusive-inclusive date range. Start is the first instant
// of the range and End the last; a point-in-time t belongs to the interval
// when Start <= t <= End.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval creates an Interval from start and end instants.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Contains reports whether t falls within the interval, inclusive of both ends.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// Days returns the number of calendar days the interval spans, counting both
// the start and end days. Sub-day components are ignored: a Monday-to-Sunday
// week spans 7 days regardless of the end-of-day timestamp on End.
func (i Interval) Days() int {
	start := truncateToDay(i.Start)
	end := truncateToDay(i.End)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
