package categoryRepository

const (
	queryGetCategoryByID = `
		SELECT id, name, transaction_type_id, enabled
		FROM categories
		WHERE id = :id
	`

	queryGetAllCategories = `
		SELECT id, name, transaction_type_id, enabled
		FROM categories
		WHERE enabled = TRUE
		ORDER BY name ASC
	`

	queryGetAllTransactionTypes = `
		SELECT id, name
		FROM transaction_types
		ORDER BY id ASC
	`
)
