// Package analytics contains the spending analytics use cases.
package analytics

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CurrentStreak counts the consecutive calendar days ending at today that
// each contain at least one expense. The walk starts at today itself: when
// today has no expense the streak is 0, no matter how many prior days are
// contiguous. Malformed expenses are ignored.
//
// Dates are bucketed by calendar day in the reference instant's location, so
// callers must pass expenses and the reference in the same zone.
func CurrentStreak(expenses []*entity.Expense, today time.Time) int {
	if len(expenses) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(expenses))
	for _, e := range expenses {
		if !e.IsValid() {
			continue
		}
		days[dayKey(e.Date)] = struct{}{}
	}

	streak := 0
	cursor := startOfDay(today)
	for {
		if _, ok := days[dayKey(cursor)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}
