package savedTransactionRepository

import (
	savedTransaction "MyPockit/internal/api/saved_transaction"
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SavedTransactionDB struct {
	ID                sql.NullString  `db:"id"`
	UserID            sql.NullString  `db:"user_id"`
	CategoryID        sql.NullString  `db:"category_id"`
	TransactionTypeID sql.NullInt64   `db:"transaction_type_id"`
	Amount            sql.NullFloat64 `db:"amount"`
	Description       sql.NullString  `db:"description"`
	Frequency         sql.NullString  `db:"frequency"`
	UpcomingDate      sql.NullTime    `db:"upcoming_date"`
	CreatedAt         sql.NullTime    `db:"created_at"`
	UpdatedAt         sql.NullTime    `db:"updated_at"`
}

func (r *savedTransactionRepository) SavePlan(c context.Context, data entity.SavedTransaction) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(querySavePlan, r.planArgs(data))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SavePlan named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SavePlan execution err")
		return err
	}

	return nil
}

func (r *savedTransactionRepository) GetPlanByID(c context.Context, id string) (entity.SavedTransaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row SavedTransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetPlanByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPlanByID named query preparation err")
		return entity.SavedTransaction{}, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.GetContext(c, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"plan_id":    id,
			}).Warn("GetPlanByID no rows found")
			return entity.SavedTransaction{}, savedTransaction.ErrPlanNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPlanByID execution err")
		return entity.SavedTransaction{}, err
	}

	return r.makePlan(row), nil
}

func (r *savedTransactionRepository) ExistsPlanByID(c context.Context, id string) (bool, error) {
	requestID := contextPkg.GetRequestID(c)
	var exists bool

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryExistsPlanByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ExistsPlanByID named query preparation err")
		return false, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.GetContext(c, r.q, &exists, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ExistsPlanByID execution err")
		return false, err
	}

	return exists, nil
}

func (r *savedTransactionRepository) GetPlansByUserID(c context.Context, userID string) ([]entity.SavedTransaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []SavedTransactionDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetPlansByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPlansByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.SelectContext(c, r.q, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPlansByUserID execution err")
		return nil, err
	}

	result := make([]entity.SavedTransaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makePlan(row))
	}

	return result, nil
}

func (r *savedTransactionRepository) UpdatePlan(c context.Context, data entity.SavedTransaction) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryUpdatePlan, r.planArgs(data))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePlan named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdatePlan execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return savedTransaction.ErrPlanNotFound
	}

	return nil
}

func (r *savedTransactionRepository) AdvancePlanDate(c context.Context, id string, upcomingDate time.Time) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id":            id,
		"upcoming_date": upcomingDate,
	}

	query, args, err := sqlx.Named(queryAdvancePlanDate, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AdvancePlanDate named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AdvancePlanDate execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return savedTransaction.ErrPlanNotFound
	}

	return nil
}

func (r *savedTransactionRepository) DeletePlanByID(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeletePlanByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePlanByID named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeletePlanByID execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return savedTransaction.ErrPlanNotFound
	}

	return nil
}

// planArgs maps a zero UpcomingDate to NULL so dormant plans round-trip
// through the nullable column.
func (r *savedTransactionRepository) planArgs(data entity.SavedTransaction) map[string]interface{} {
	var upcomingDate interface{}
	if !data.UpcomingDate.IsZero() {
		upcomingDate = data.UpcomingDate
	}

	return map[string]interface{}{
		"id":                  data.ID,
		"user_id":             data.UserID,
		"category_id":         data.CategoryID,
		"transaction_type_id": data.TransactionTypeID,
		"amount":              data.Amount,
		"description":         data.Description,
		"frequency":           string(data.Frequency),
		"upcoming_date":       upcomingDate,
	}
}

func (r *savedTransactionRepository) makePlan(row SavedTransactionDB) entity.SavedTransaction {
	var upcomingDate, createdAt, updatedAt time.Time
	if row.UpcomingDate.Valid {
		upcomingDate = row.UpcomingDate.Time
	}
	if row.CreatedAt.Valid {
		createdAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		updatedAt = row.UpdatedAt.Time
	}

	return entity.SavedTransaction{
		ID:                row.ID.String,
		UserID:            row.UserID.String,
		CategoryID:        row.CategoryID.String,
		TransactionTypeID: int(row.TransactionTypeID.Int64),
		Amount:            row.Amount.Float64,
		Description:       row.Description.String,
		Frequency:         entity.TransactionFrequency(row.Frequency.String),
		UpcomingDate:      upcomingDate,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
