package savedTransactionService

import (
	"MyPockit/internal/entity"
	"fmt"
	"time"
)

// DueInformation labels a plan's due date relative to today. The rules are
// checked in order and the first match wins; a plan with no scheduled
// occurrence gets no label. The overdue wording, including the approximate
// month and day math, is long-standing user-facing copy and must not be
// silently corrected.
func DueInformation(plan entity.SavedTransaction, today time.Time) *string {
	if plan.UpcomingDate.IsZero() {
		return nil
	}

	upcoming := plan.UpcomingDate

	if sameDate(upcoming, today) {
		return label("Due on Today")
	}
	if sameDate(upcoming, today.AddDate(0, 0, 1)) {
		return label("Due on Tomorrow")
	}
	if sameDate(upcoming, today.AddDate(0, 0, 2)) {
		return label("Due on a day after tomorrow")
	}

	if plan.Frequency == entity.FrequencyMonthly && dateBefore(upcoming, today) {
		// months here is the period's month component alone; spans beyond a
		// year keep only months % 12 in the label.
		_, months, days := periodBetween(upcoming, today)
		if months >= 0 && days > 0 {
			return label(fmt.Sprintf("%d Months over due", months+1))
		}
		return label(fmt.Sprintf("%d Months over due", months))
	}

	if sameDate(upcoming, today.AddDate(0, 0, -1)) {
		return label("1 day overdue")
	}

	if dateBefore(upcoming, today) {
		years, months, days := periodBetween(upcoming, today)
		totalDays := years*365 + months*30 + days
		return label(fmt.Sprintf("%d days overdue", totalDays))
	}

	return label("Due on " + upcoming.Format("2006-01-02"))
}

func label(s string) *string {
	return &s
}

// periodBetween decomposes the span from start to end into calendar years,
// months and leftover days, the way java.time.Period.between does: the month
// total is taken first, then days are borrowed back from the last partial
// month when the end day-of-month is smaller than the start's.
func periodBetween(start, end time.Time) (years, months, days int) {
	start = truncateToDate(start)
	end = truncateToDate(end)

	startTotalMonths := start.Year()*12 + int(start.Month()) - 1
	endTotalMonths := end.Year()*12 + int(end.Month()) - 1

	totalMonths := endTotalMonths - startTotalMonths
	days = end.Day() - start.Day()

	if totalMonths > 0 && days < 0 {
		totalMonths--
		calcDate := plusMonths(start, totalMonths)
		days = int(end.Sub(calcDate) / (24 * time.Hour))
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
		days -= daysInMonth(end.Year(), end.Month())
	}

	years = totalMonths / 12
	months = totalMonths % 12
	return years, months, days
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dateBefore(a, b time.Time) bool {
	return truncateToDate(a).Before(truncateToDate(b))
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
