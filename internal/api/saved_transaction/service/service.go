package savedTransactionService

import (
	authRepository "MyPockit/internal/api/auth/repository"
	categoryRepository "MyPockit/internal/api/category/repository"
	savedTransaction "MyPockit/internal/api/saved_transaction"
	savedTransactionRepository "MyPockit/internal/api/saved_transaction/repository"
	"MyPockit/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SavedTransactionService interface {
	SavedTransaction() SavedTransactionDomain
	GetRepository() savedTransactionRepository.Repository
}

type SavedTransactionDomain interface {
	CreateSavedTransaction(ctx context.Context, userID string, req savedTransaction.SavedTransactionRequest) error
	AddSavedTransaction(ctx context.Context, planID string) error
	EditSavedTransaction(ctx context.Context, planID string, req savedTransaction.SavedTransactionRequest) error
	DeleteSavedTransaction(ctx context.Context, planID string) error
	SkipSavedTransaction(ctx context.Context, planID string) error
	GetSavedTransactionsByUser(ctx context.Context, userID string) ([]savedTransaction.SavedTransactionResponse, error)
	GetSavedTransactionsByUserForCurrentMonth(ctx context.Context, userID string) ([]savedTransaction.SavedTransactionResponse, error)
	GetSavedTransactionByID(ctx context.Context, planID string) (savedTransaction.SavedTransactionDetailResponse, error)
}

type savedTransactionServiceImpl struct {
	savedTransactionDomain SavedTransactionDomain
	repository             savedTransactionRepository.Repository
}

func (s *savedTransactionServiceImpl) SavedTransaction() SavedTransactionDomain {
	return s.savedTransactionDomain
}

func (s *savedTransactionServiceImpl) GetRepository() savedTransactionRepository.Repository {
	return s.repository
}

type savedTransactionDomainImpl struct {
	log                        *logrus.Logger
	savedTransactionRepository savedTransactionRepository.Repository
	categoryRepository         categoryRepository.Repository
	authRepository             authRepository.Repository
	utils                      utils.IUtils
	now                        func() time.Time
}

func New(
	log *logrus.Logger,
	savedTransactionRepo savedTransactionRepository.Repository,
	categoryRepo categoryRepository.Repository,
	authRepo authRepository.Repository,
	utils utils.IUtils,
) SavedTransactionService {
	return &savedTransactionServiceImpl{
		savedTransactionDomain: &savedTransactionDomainImpl{
			log:                        log,
			savedTransactionRepository: savedTransactionRepo,
			categoryRepository:         categoryRepo,
			authRepository:             authRepo,
			utils:                      utils,
			now:                        time.Now,
		},
		repository: savedTransactionRepo,
	}
}
