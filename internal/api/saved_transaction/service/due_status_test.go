package savedTransactionService

import (
	"MyPockit/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func duePlan(frequency entity.TransactionFrequency, upcoming time.Time) entity.SavedTransaction {
	return entity.SavedTransaction{
		ID:           "plan",
		Frequency:    frequency,
		UpcomingDate: upcoming,
	}
}

func TestDueInformation(t *testing.T) {
	today := date(2024, time.March, 15)

	tests := []struct {
		name      string
		frequency entity.TransactionFrequency
		upcoming  time.Time
		want      string
	}{
		{"due today", entity.FrequencyDaily, date(2024, time.March, 15), "Due on Today"},
		{"due tomorrow", entity.FrequencyDaily, date(2024, time.March, 16), "Due on Tomorrow"},
		{"due day after tomorrow", entity.FrequencyMonthly, date(2024, time.March, 17), "Due on a day after tomorrow"},
		{"one day overdue", entity.FrequencyDaily, date(2024, time.March, 14), "1 day overdue"},
		// monthly overdue wins over the 1-day rule, even one day late
		{"monthly one day overdue", entity.FrequencyMonthly, date(2024, time.March, 14), "1 Months over due"},
		{"monthly partial months round up", entity.FrequencyMonthly, date(2024, time.January, 10), "3 Months over due"},
		{"monthly exact months", entity.FrequencyMonthly, date(2024, time.January, 15), "2 Months over due"},
		// beyond a year only the month component survives in the label
		{"monthly overdue beyond a year", entity.FrequencyMonthly, date(2022, time.December, 10), "4 Months over due"},
		{"daily days overdue", entity.FrequencyDaily, date(2024, time.March, 1), "14 days overdue"},
		// the day count approximates months as 30 days and years as 365
		{"daily overdue beyond a year", entity.FrequencyDaily, date(2023, time.March, 10), "370 days overdue"},
		{"future date", entity.FrequencyMonthly, date(2024, time.April, 1), "Due on 2024-04-01"},
		{"far future daily", entity.FrequencyDaily, date(2024, time.March, 18), "Due on 2024-03-18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DueInformation(duePlan(tt.frequency, tt.upcoming), today)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestDueInformationDormantPlan(t *testing.T) {
	got := DueInformation(duePlan(entity.FrequencyNone, time.Time{}), date(2024, time.March, 15))
	assert.Nil(t, got)
}

func TestPeriodBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		years      int
		months     int
		days       int
	}{
		{"same day", date(2024, time.March, 15), date(2024, time.March, 15), 0, 0, 0},
		{"days only", date(2024, time.March, 1), date(2024, time.March, 15), 0, 0, 14},
		{"months and days", date(2024, time.January, 10), date(2024, time.March, 15), 0, 2, 5},
		{"day borrow from partial month", date(2024, time.January, 31), date(2024, time.March, 1), 0, 1, 1},
		{"exactly one year", date(2023, time.March, 15), date(2024, time.March, 15), 1, 0, 0},
		{"year with leftovers", date(2022, time.December, 10), date(2024, time.March, 15), 1, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, months, days := periodBetween(tt.start, tt.end)
			assert.Equal(t, tt.years, years, "years")
			assert.Equal(t, tt.months, months, "months")
			assert.Equal(t, tt.days, days, "days")
		})
	}
}
