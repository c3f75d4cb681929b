package seeder

const (
	queryInsertTransactionType = `
		INSERT INTO transaction_types (id, name)
		VALUES (:id, :name)
		ON CONFLICT (id) DO NOTHING
	`

	queryCategoryExists = `
		SELECT EXISTS (
			SELECT 1 FROM categories
			WHERE name = :name AND transaction_type_id = :transaction_type_id
		)
	`

	queryInsertCategory = `
		INSERT INTO categories (id, name, transaction_type_id, enabled)
		VALUES (:id, :name, :transaction_type_id, :enabled)
	`

	queryAdminExists = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = :email
		)
	`

	queryInsertAdmin = `
		INSERT INTO users (id, username, email, password, is_verified, is_admin, created_at, updated_at)
		VALUES (:id, :username, :email, :password, :is_verified, :is_admin, :created_at, :updated_at)
	`
)
