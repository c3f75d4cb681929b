package savedTransactionRepository

const (
	querySavePlan = `
		INSERT INTO saved_transactions
			(id, user_id, category_id, transaction_type_id, amount, description, frequency, upcoming_date, created_at, updated_at)
		VALUES
			(:id, :user_id, :category_id, :transaction_type_id, :amount, :description, :frequency, :upcoming_date, NOW(), NOW())
	`

	queryGetPlanByID = `
		SELECT id, user_id, category_id, transaction_type_id, amount, description, frequency, upcoming_date, created_at, updated_at
		FROM saved_transactions
		WHERE id = :id
	`

	queryExistsPlanByID = `
		SELECT EXISTS (
			SELECT 1 FROM saved_transactions WHERE id = :id
		)
	`

	queryGetPlansByUserID = `
		SELECT id, user_id, category_id, transaction_type_id, amount, description, frequency, upcoming_date, created_at, updated_at
		FROM saved_transactions
		WHERE user_id = :user_id
		ORDER BY upcoming_date ASC NULLS LAST
	`

	queryUpdatePlan = `
		UPDATE saved_transactions
		SET category_id = :category_id,
			transaction_type_id = :transaction_type_id,
			amount = :amount,
			description = :description,
			frequency = :frequency,
			upcoming_date = :upcoming_date,
			updated_at = NOW()
		WHERE id = :id
	`

	queryAdvancePlanDate = `
		UPDATE saved_transactions
		SET upcoming_date = :upcoming_date,
			updated_at = NOW()
		WHERE id = :id
	`

	queryDeletePlanByID = `
		DELETE FROM saved_transactions
		WHERE id = :id
	`

	queryCreatePlanTransaction = `
		INSERT INTO transactions (id, user_id, category_id, description, amount, date, created_at, updated_at)
		VALUES (:id, :user_id, :category_id, :description, :amount, :date, NOW(), NOW())
	`
)
