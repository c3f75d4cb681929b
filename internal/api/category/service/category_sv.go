package categoryService

import (
	"MyPockit/internal/api/category"
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"errors"

	"MyPockit/pkg/response"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *categoryDomainImpl) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create repository client")
		return nil, category.ErrFetchCategories
	}

	categories, err := repoClient.Categories.GetAllCategories(ctx)
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			return nil, err
		}
		return nil, category.ErrFetchCategories
	}

	return categories, nil
}

func (s *categoryDomainImpl) GetAllTransactionTypes(ctx context.Context) ([]entity.TransactionType, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create repository client")
		return nil, category.ErrFetchCategories
	}

	transactionTypes, err := repoClient.Categories.GetAllTransactionTypes(ctx)
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			return nil, err
		}
		return nil, category.ErrFetchCategories
	}

	return transactionTypes, nil
}
