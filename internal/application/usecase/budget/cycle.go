// Package budget contains the budget management and analysis use cases.
package budget

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// ResolveCycle computes the billing cycle of a budget relative to a
// reference instant. Starting from the budget's literal start date, whole
// periods (7 days or 1 calendar month) are advanced until the cycle contains
// the reference; CyclePrevious then shifts back one period from that result.
//
// A reference before the start date clamps to the first cycle. Monthly
// advancement uses calendar-month arithmetic, so a start on the 29th-31st
// normalizes forward in shorter months (Jan 31 + 1 month = Mar 3).
func ResolveCycle(b *entity.Budget, reference time.Time, selection valueobject.CycleSelection) valueobject.Interval {
	start := startOfDay(b.StartDate)

	for {
		end := cycleEndFor(start, b.Period)
		if !reference.After(end) {
			break
		}
		start = advanceCycle(start, b.Period)
	}

	if selection == valueobject.CyclePrevious {
		start = retreatCycle(start, b.Period)
	}

	return valueobject.NewInterval(start, cycleEndFor(start, b.Period))
}

// cycleEndFor returns the inclusive end of the cycle starting at start.
func cycleEndFor(start time.Time, period entity.BudgetPeriod) time.Time {
	if period == entity.BudgetPeriodWeekly {
		return endOfDay(start.AddDate(0, 0, 6))
	}
	return endOfDay(start.AddDate(0, 1, -1))
}

func advanceCycle(start time.Time, period entity.BudgetPeriod) time.Time {
	if period == entity.BudgetPeriodWeekly {
		return start.AddDate(0, 0, 7)
	}
	return start.AddDate(0, 1, 0)
}

func retreatCycle(start time.Time, period entity.BudgetPeriod) time.Time {
	if period == entity.BudgetPeriodWeekly {
		return start.AddDate(0, 0, -7)
	}
	return start.AddDate(0, -1, 0)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
