package savedTransactionRepository

import (
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *planTransactionRepository) CreateTransaction(c context.Context, data entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":          data.ID,
		"user_id":     data.UserID,
		"category_id": data.CategoryID,
		"description": data.Description,
		"amount":      data.Amount,
		"date":        data.Date,
	}

	query, args, err := sqlx.Named(queryCreatePlanTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTransaction execution err")
		return err
	}

	return nil
}
