package seeder

import (
	"MyPockit/internal/entity"
	"MyPockit/pkg/bcrypt"
	"MyPockit/pkg/utils"
	"context"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

var expenseCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Bills & Utilities",
	"Entertainment",
	"Healthcare",
	"Education",
	"Travel",
	"Personal Care",
	"Gifts & Donations",
}

var incomeCategories = []string{
	"Salary",
	"Freelance",
	"Investment",
	"Business",
	"Rental Income",
	"Bonus",
	"Gift Received",
	"Other Income",
}

type Seeder struct {
	db          *sqlx.DB
	log         *logrus.Logger
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(db *sqlx.DB, log *logrus.Logger) *Seeder {
	return &Seeder{
		db:          db,
		log:         log,
		bcryptUtils: bcrypt.New(),
		utils:       utils.New(),
	}
}

// Run seeds the transaction types, the default categories and the admin
// account. Every step is idempotent so the server can run it on each start.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedTransactionTypes(ctx); err != nil {
		return err
	}
	if err := s.seedCategories(ctx); err != nil {
		return err
	}
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	s.log.Info("Database seeding completed")
	return nil
}

func (s *Seeder) seedTransactionTypes(ctx context.Context) error {
	types := []entity.TransactionType{
		{ID: entity.TransactionTypeIncomeID, Name: entity.TransactionTypeIncome},
		{ID: entity.TransactionTypeExpenseID, Name: entity.TransactionTypeExpense},
	}

	for _, transactionType := range types {
		argsKV := map[string]interface{}{
			"id":   transactionType.ID,
			"name": transactionType.Name,
		}

		query, args, err := sqlx.Named(queryInsertTransactionType, argsKV)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Failed to build SQL query for seedTransactionTypes")
			return err
		}
		query = s.db.Rebind(query)

		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			s.log.WithFields(logrus.Fields{
				"type":  transactionType.Name,
				"error": err.Error(),
			}).Error("Database error when seeding transaction type")
			return err
		}
	}

	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	if err := s.seedCategoryGroup(ctx, expenseCategories, entity.TransactionTypeExpenseID); err != nil {
		return err
	}
	return s.seedCategoryGroup(ctx, incomeCategories, entity.TransactionTypeIncomeID)
}

func (s *Seeder) seedCategoryGroup(ctx context.Context, names []string, transactionTypeID int) error {
	for _, name := range names {
		argsKV := map[string]interface{}{
			"name":                name,
			"transaction_type_id": transactionTypeID,
		}

		query, args, err := sqlx.Named(queryCategoryExists, argsKV)
		if err != nil {
			return err
		}
		query = s.db.Rebind(query)

		var exists bool
		if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
			s.log.WithFields(logrus.Fields{
				"category": name,
				"error":    err.Error(),
			}).Error("Database error when checking category existence")
			return err
		}
		if exists {
			continue
		}

		ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}

		argsKV = map[string]interface{}{
			"id":                  ULID,
			"name":                name,
			"transaction_type_id": transactionTypeID,
			"enabled":             true,
		}

		query, args, err = sqlx.Named(queryInsertCategory, argsKV)
		if err != nil {
			return err
		}
		query = s.db.Rebind(query)

		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			s.log.WithFields(logrus.Fields{
				"category": name,
				"error":    err.Error(),
			}).Error("Database error when seeding category")
			return err
		}
	}

	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		s.log.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	argsKV := map[string]interface{}{
		"email": adminEmail,
	}

	query, args, err := sqlx.Named(queryAdminExists, argsKV)
	if err != nil {
		return err
	}
	query = s.db.Rebind(query)

	var exists bool
	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Database error when checking admin existence")
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(adminPassword)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to hash admin password")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	argsKV = map[string]interface{}{
		"id":          ULID,
		"username":    "admin",
		"email":       adminEmail,
		"password":    hashedPassword,
		"is_verified": true,
		"is_admin":    true,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err = sqlx.Named(queryInsertAdmin, argsKV)
	if err != nil {
		return err
	}
	query = s.db.Rebind(query)

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Database error when seeding admin user")
		return err
	}

	s.log.Info("Admin user created")
	return nil
}
