// Package analytics contains the spending analytics use cases: period
// resolution, summaries, trends, and activity streaks.
package analytics

import (
	"time"

	"github.com/spendwise/backend/internal/domain/valueobject"
)

// Period is a symbolic reporting window resolved against a reference instant.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"

	// PeriodCustom labels summaries computed over an explicit date range.
	// It is an output label only, never a valid request period.
	PeriodCustom Period = "custom"
)

// IsValid reports whether the period is one of the supported symbolic windows.
func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// ResolvePeriod converts a symbolic period plus a reference instant into a
// concrete inclusive date interval:
//   - today: the reference day, midnight through end of day
//   - week: the Monday-start week containing the reference instant
//   - month: first through last calendar day of the reference month
func ResolvePeriod(period Period, reference time.Time) valueobject.Interval {
	loc := reference.Location()

	switch period {
	case PeriodToday:
		start := startOfDay(reference)
		return valueobject.NewInterval(start, endOfDay(start))

	case PeriodWeek:
		start := weekStart(reference)
		return valueobject.NewInterval(start, endOfDay(start.AddDate(0, 0, 6)))

	case PeriodMonth:
		fallthrough
	default:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, loc)
		return valueobject.NewInterval(start, endOfDay(start.AddDate(0, 1, -1)))
	}
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// dayKey returns the calendar-date key for an instant, used to bucket
// expenses by day.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
