package transactionService

import (
	"MyPockit/internal/api/category"
	"MyPockit/internal/api/transaction"
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

func (s *transactionDomainImpl) CreateTransaction(ctx context.Context, userID string, req transaction.CreateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	categoryClient, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create category repository client")
		return transaction.ErrCreateTransaction
	}

	if _, err := categoryClient.Categories.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return transaction.ErrInvalidCategory
		}
		return transaction.ErrCreateTransaction
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return transaction.ErrInvalidDateFormat
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to generate transaction id")
		return transaction.ErrCreateTransaction
	}

	repoClient, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create transaction repository client")
		return transaction.ErrCreateTransaction
	}

	data := entity.Transaction{
		ID:          id,
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
	}

	if err := repoClient.Transactions.CreateTransaction(ctx, data); err != nil {
		return transaction.ErrCreateTransaction
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": id,
		"user_id":        userID,
	}).Info("transaction created")

	return nil
}

func (s *transactionDomainImpl) GetTransactionsByUserID(ctx context.Context, userID string) ([]transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create transaction repository client")
		return nil, transaction.ErrFetchTransactions
	}

	transactions, err := repoClient.Transactions.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, transaction.ErrFetchTransactions
	}

	categoryClient, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return nil, transaction.ErrFetchTransactions
	}

	categories, err := categoryClient.Categories.GetAllCategories(ctx)
	if err != nil {
		return nil, transaction.ErrFetchTransactions
	}

	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID] = cat.Name
	}

	result := make([]transaction.TransactionResponse, 0, len(transactions))
	for _, tr := range transactions {
		result = append(result, transaction.TransactionResponse{
			ID:           tr.ID,
			CategoryID:   tr.CategoryID,
			CategoryName: categoryNames[tr.CategoryID],
			Description:  tr.Description,
			Amount:       tr.Amount,
			Date:         tr.Date.Format(dateLayout),
		})
	}

	return result, nil
}

func (s *transactionDomainImpl) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create transaction repository client")
		return transaction.ErrDeleteTransaction
	}

	existing, err := repoClient.Transactions.GetTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return transaction.ErrTransactionNotFound
		}
		return transaction.ErrDeleteTransaction
	}

	if existing.UserID != userID {
		return transaction.ErrTransactionForbidden
	}

	if err := repoClient.Transactions.DeleteTransaction(ctx, transactionID); err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return transaction.ErrTransactionNotFound
		}
		return transaction.ErrDeleteTransaction
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": transactionID,
		"user_id":        userID,
	}).Info("transaction deleted")

	return nil
}
