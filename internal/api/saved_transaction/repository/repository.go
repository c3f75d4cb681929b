package savedTransactionRepository

import (
	"MyPockit/internal/entity"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

// NewClient with tx=true puts Plans and Transactions on the same database
// transaction, which is what lets materialize insert a transaction and
// advance the plan as one atomic pair.
func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Plans:        &savedTransactionRepository{q: db, log: r.log},
		Transactions: &planTransactionRepository{q: db, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Plans interface {
		SavePlan(ctx context.Context, data entity.SavedTransaction) error
		GetPlanByID(ctx context.Context, id string) (entity.SavedTransaction, error)
		ExistsPlanByID(ctx context.Context, id string) (bool, error)
		GetPlansByUserID(ctx context.Context, userID string) ([]entity.SavedTransaction, error)
		UpdatePlan(ctx context.Context, data entity.SavedTransaction) error
		AdvancePlanDate(ctx context.Context, id string, upcomingDate time.Time) error
		DeletePlanByID(ctx context.Context, id string) error
	}

	Transactions interface {
		CreateTransaction(ctx context.Context, data entity.Transaction) error
	}

	Commit   func() error
	Rollback func() error
}

type savedTransactionRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type planTransactionRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
