package savedTransactionService

import (
	"MyPockit/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextUpcomingDateDaily(t *testing.T) {
	tests := []struct {
		name    string
		current time.Time
		want    time.Time
	}{
		{"mid month", date(2024, time.March, 15), date(2024, time.March, 16)},
		{"month boundary", date(2024, time.April, 30), date(2024, time.May, 1)},
		{"year boundary", date(2023, time.December, 31), date(2024, time.January, 1)},
		{"into leap day", date(2024, time.February, 28), date(2024, time.February, 29)},
		{"out of leap day", date(2024, time.February, 29), date(2024, time.March, 1)},
		{"non leap february", date(2023, time.February, 28), date(2023, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextUpcomingDate(entity.FrequencyDaily, tt.current)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextUpcomingDateMonthly(t *testing.T) {
	tests := []struct {
		name    string
		current time.Time
		want    time.Time
	}{
		{"same day next month", date(2024, time.March, 15), date(2024, time.April, 15)},
		{"jan 31 clamps to leap feb", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"jan 31 clamps to feb", date(2023, time.January, 31), date(2023, time.February, 28)},
		{"jan 30 clamps to feb", date(2023, time.January, 30), date(2023, time.February, 28)},
		{"mar 31 clamps to apr 30", date(2024, time.March, 31), date(2024, time.April, 30)},
		{"feb 29 keeps day in march", date(2024, time.February, 29), date(2024, time.March, 29)},
		{"december rolls into next year", date(2024, time.December, 10), date(2025, time.January, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextUpcomingDate(entity.FrequencyMonthly, tt.current)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextUpcomingDateNoRecurrence(t *testing.T) {
	for _, frequency := range []entity.TransactionFrequency{entity.FrequencyNone, "WEEKLY", ""} {
		_, ok := NextUpcomingDate(frequency, date(2024, time.March, 15))
		assert.False(t, ok, "frequency %q must not reschedule", frequency)
	}
}
