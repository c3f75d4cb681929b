package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (id, user_id, category_id, description, amount, date, created_at, updated_at)
		VALUES (:id, :user_id, :category_id, :description, :amount, :date, NOW(), NOW())
	`

	queryGetTransactionByID = `
		SELECT id, user_id, category_id, description, amount, date, created_at, updated_at
		FROM transactions
		WHERE id = :id
	`

	queryGetTransactionsByUserID = `
		SELECT id, user_id, category_id, description, amount, date, created_at, updated_at
		FROM transactions
		WHERE user_id = :user_id
		ORDER BY date DESC, created_at DESC
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
