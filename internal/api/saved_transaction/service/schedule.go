package savedTransactionService

import (
	"MyPockit/internal/entity"
	"time"
)

// NextUpcomingDate applies a plan's recurrence to its current due date.
// The second return value is false when the frequency carries no recurrence;
// callers must then leave the stored date untouched so the plan goes dormant
// holding its last due date.
func NextUpcomingDate(frequency entity.TransactionFrequency, current time.Time) (time.Time, bool) {
	switch frequency {
	case entity.FrequencyDaily:
		return current.AddDate(0, 0, 1), true
	case entity.FrequencyMonthly:
		return plusMonths(current, 1), true
	default:
		return time.Time{}, false
	}
}

// plusMonths keeps the day-of-month and clamps to the target month's last
// day when it would overflow, so Jan 31 becomes Feb 28 (29 in leap years).
// time.Time.AddDate normalizes the overflow into March instead, which is
// the wrong behavior for monthly billing dates.
func plusMonths(d time.Time, months int) time.Time {
	year, month, day := d.Date()

	total := year*12 + int(month) - 1 + months
	y, m := total/12, total%12
	if m < 0 {
		m += 12
		y--
	}

	targetMonth := time.Month(m + 1)
	if last := daysInMonth(y, targetMonth); day > last {
		day = last
	}

	return time.Date(y, targetMonth, day, 0, 0, 0, 0, d.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
