package transactionService

import (
	categoryRepository "MyPockit/internal/api/category/repository"
	"MyPockit/internal/api/transaction"
	transactionRepository "MyPockit/internal/api/transaction/repository"
	"MyPockit/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type TransactionService interface {
	Transaction() TransactionDomain
	GetRepository() transactionRepository.Repository
}

type TransactionDomain interface {
	CreateTransaction(ctx context.Context, userID string, req transaction.CreateTransactionRequest) error
	GetTransactionsByUserID(ctx context.Context, userID string) ([]transaction.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

type transactionServiceImpl struct {
	transactionDomain TransactionDomain
	repository        transactionRepository.Repository
}

func (s *transactionServiceImpl) Transaction() TransactionDomain {
	return s.transactionDomain
}

func (s *transactionServiceImpl) GetRepository() transactionRepository.Repository {
	return s.repository
}

type transactionDomainImpl struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	categoryRepository    categoryRepository.Repository
	utils                 utils.IUtils
}

func New(
	log *logrus.Logger,
	transactionRepo transactionRepository.Repository,
	categoryRepo categoryRepository.Repository,
	utils utils.IUtils,
) TransactionService {
	return &transactionServiceImpl{
		transactionDomain: &transactionDomainImpl{
			log:                   log,
			transactionRepository: transactionRepo,
			categoryRepository:    categoryRepo,
			utils:                 utils,
		},
		repository: transactionRepo,
	}
}
