package categoryService

import (
	categoryRepository "MyPockit/internal/api/category/repository"
	"MyPockit/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type CategoryService interface {
	Category() CategoryDomain
	GetRepository() categoryRepository.Repository
}

type CategoryDomain interface {
	GetAllCategories(ctx context.Context) ([]entity.Category, error)
	GetAllTransactionTypes(ctx context.Context) ([]entity.TransactionType, error)
}

type categoryServiceImpl struct {
	categoryDomain CategoryDomain
	repository     categoryRepository.Repository
}

func (s *categoryServiceImpl) Category() CategoryDomain {
	return s.categoryDomain
}

func (s *categoryServiceImpl) GetRepository() categoryRepository.Repository {
	return s.repository
}

type categoryDomainImpl struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
}

func New(log *logrus.Logger, repo categoryRepository.Repository) CategoryService {
	return &categoryServiceImpl{
		categoryDomain: &categoryDomainImpl{
			log:                log,
			categoryRepository: repo,
		},
		repository: repo,
	}
}
