package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (id, username, email, password, is_verified, is_admin, created_at, updated_at)
		VALUES (:id, :username, :email, :password, :is_verified, :is_admin, :created_at, :updated_at)
	`

	queryGetByID = `
		SELECT id, username, email, password, is_verified, is_admin, created_at, updated_at
		FROM users
		WHERE id = :id
	`

	queryGetByEmail = `
		SELECT id, username, email, password, is_verified, is_admin, created_at, updated_at
		FROM users
		WHERE email = :email
	`

	queryExistsByID = `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = :id)
	`

	queryExistsByEmail = `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = :email)
	`

	queryExistsByUsername = `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = :username)
	`

	queryUpdateVerificationStatus = `
		UPDATE users
		SET is_verified = :is_verified, updated_at = :updated_at
		WHERE email = :email
	`
)
