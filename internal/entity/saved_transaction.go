package entity

import "time"

type TransactionFrequency string

const (
	FrequencyDaily   TransactionFrequency = "DAILY"
	FrequencyMonthly TransactionFrequency = "MONTHLY"

	// FrequencyNone marks a one-off plan. It never reschedules, so once
	// materialized or skipped the plan keeps its last upcoming date.
	FrequencyNone TransactionFrequency = "NONE"
)

func IsValidFrequency(frequency string) bool {
	switch TransactionFrequency(frequency) {
	case FrequencyDaily, FrequencyMonthly, FrequencyNone:
		return true
	default:
		return false
	}
}

// SavedTransaction is a planned or recurring entry that the user can later
// materialize into a real Transaction. TransactionTypeID is a denormalized
// copy of the category's transaction type, refreshed only on create and edit.
// A zero UpcomingDate means no further occurrence is scheduled.
type SavedTransaction struct {
	ID                string               `db:"id"`
	UserID            string               `db:"user_id"`
	CategoryID        string               `db:"category_id"`
	TransactionTypeID int                  `db:"transaction_type_id"`
	Amount            float64              `db:"amount"`
	Description       string               `db:"description"`
	Frequency         TransactionFrequency `db:"frequency"`
	UpcomingDate      time.Time            `db:"upcoming_date"`
	CreatedAt         time.Time            `db:"created_at"`
	UpdatedAt         time.Time            `db:"updated_at"`
}
