package entity

// Transaction types are seeded once and referenced by small fixed IDs,
// matching what the frontend stores alongside each category.
const (
	TransactionTypeIncomeID  = 1
	TransactionTypeExpenseID = 2
)

const (
	TransactionTypeIncome  = "TYPE_INCOME"
	TransactionTypeExpense = "TYPE_EXPENSE"
)

type TransactionType struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type Category struct {
	ID                string `db:"id"`
	Name              string `db:"name"`
	TransactionTypeID int    `db:"transaction_type_id"`
	Enabled           bool   `db:"enabled"`
}
