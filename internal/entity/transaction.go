package entity

import "time"

// Transaction is a realized financial event. It is created either directly
// by the user or as the side effect of materializing a saved transaction.
type Transaction struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	CategoryID  string    `db:"category_id"`
	Description string    `db:"description"`
	Amount      float64   `db:"amount"`
	Date        time.Time `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
