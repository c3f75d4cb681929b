package categoryRepository

import (
	"MyPockit/internal/api/category"
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CategoryDB struct {
	ID                sql.NullString `db:"id"`
	Name              sql.NullString `db:"name"`
	TransactionTypeID sql.NullInt64  `db:"transaction_type_id"`
	Enabled           sql.NullBool   `db:"enabled"`
}

func (r *categoryRepository) GetCategoryByID(c context.Context, id string) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var row CategoryDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCategoryByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.Category{}, err
	}
	query = r.q.Rebind(query)

	if err := sqlx.GetContext(c, r.q, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": id,
			}).Warn("GetCategoryByID no rows found")
			return entity.Category{}, category.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.Category{}, err
	}

	return r.makeCategory(row), nil
}

func (r *categoryRepository) GetAllCategories(c context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []CategoryDB

	query := r.q.Rebind(queryGetAllCategories)

	if err := sqlx.SelectContext(c, r.q, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	result := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeCategory(row))
	}

	return result, nil
}

func (r *categoryRepository) GetAllTransactionTypes(c context.Context) ([]entity.TransactionType, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []entity.TransactionType

	query := r.q.Rebind(queryGetAllTransactionTypes)

	if err := sqlx.SelectContext(c, r.q, &rows, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTransactionTypes execution err")
		return nil, err
	}

	return rows, nil
}

func (r *categoryRepository) makeCategory(row CategoryDB) entity.Category {
	return entity.Category{
		ID:                row.ID.String,
		Name:              row.Name.String,
		TransactionTypeID: int(row.TransactionTypeID.Int64),
		Enabled:           row.Enabled.Bool,
	}
}
