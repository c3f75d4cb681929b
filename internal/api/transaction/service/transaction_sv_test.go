package transactionService

import (
	"MyPockit/internal/api/category"
	categoryRepository "MyPockit/internal/api/category/repository"
	"MyPockit/internal/api/transaction"
	transactionRepository "MyPockit/internal/api/transaction/repository"
	"MyPockit/internal/entity"
	"MyPockit/pkg/utils"
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	transactions map[string]entity.Transaction
	categories   map[string]entity.Category
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		transactions: map[string]entity.Transaction{},
		categories: map[string]entity.Category{
			"cat-food": {ID: "cat-food", Name: "Food & Dining", TransactionTypeID: entity.TransactionTypeExpenseID, Enabled: true},
		},
	}
}

type fakeTransactionRepo struct {
	store *fakeStore
}

func (f *fakeTransactionRepo) NewClient(bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transactions: &fakeTransactions{store: f.store},
		Commit:       func() error { return nil },
		Rollback:     func() error { return nil },
	}, nil
}

type fakeTransactions struct {
	store *fakeStore
}

func (f *fakeTransactions) CreateTransaction(_ context.Context, data entity.Transaction) error {
	f.store.transactions[data.ID] = data
	return nil
}

func (f *fakeTransactions) GetTransactionByID(_ context.Context, id string) (entity.Transaction, error) {
	tr, ok := f.store.transactions[id]
	if !ok {
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	return tr, nil
}

func (f *fakeTransactions) GetTransactionsByUserID(_ context.Context, userID string) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, tr := range f.store.transactions {
		if tr.UserID == userID {
			result = append(result, tr)
		}
	}
	return result, nil
}

func (f *fakeTransactions) DeleteTransaction(_ context.Context, id string) error {
	if _, ok := f.store.transactions[id]; !ok {
		return transaction.ErrTransactionNotFound
	}
	delete(f.store.transactions, id)
	return nil
}

type fakeCategoryRepo struct {
	store *fakeStore
}

func (f *fakeCategoryRepo) NewClient(bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Categories: &fakeCategories{store: f.store},
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

type fakeCategories struct {
	store *fakeStore
}

func (f *fakeCategories) GetCategoryByID(_ context.Context, id string) (entity.Category, error) {
	cat, ok := f.store.categories[id]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return cat, nil
}

func (f *fakeCategories) GetAllCategories(_ context.Context) ([]entity.Category, error) {
	var result []entity.Category
	for _, cat := range f.store.categories {
		result = append(result, cat)
	}
	return result, nil
}

func (f *fakeCategories) GetAllTransactionTypes(_ context.Context) ([]entity.TransactionType, error) {
	return nil, nil
}

func newTestDomain(store *fakeStore) *transactionDomainImpl {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &transactionDomainImpl{
		log:                   logger,
		transactionRepository: &fakeTransactionRepo{store: store},
		categoryRepository:    &fakeCategoryRepo{store: store},
		utils:                 utils.New(),
	}
}

func TestCreateTransaction(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store)

	req := transaction.CreateTransactionRequest{
		CategoryID:  "cat-food",
		Description: "Groceries",
		Amount:      82.50,
		Date:        "2024-03-15",
	}

	err := domain.CreateTransaction(context.Background(), "user-1", req)
	require.NoError(t, err)

	require.Len(t, store.transactions, 1)
	for _, tr := range store.transactions {
		assert.Equal(t, "user-1", tr.UserID)
		assert.Equal(t, "cat-food", tr.CategoryID)
		assert.Equal(t, 82.50, tr.Amount)
		assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), tr.Date)
	}
}

func TestCreateTransactionInvalidCategory(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store)

	req := transaction.CreateTransactionRequest{
		CategoryID: "cat-missing",
		Amount:     10,
		Date:       "2024-03-15",
	}

	err := domain.CreateTransaction(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, transaction.ErrInvalidCategory)
	assert.Empty(t, store.transactions)
}

func TestCreateTransactionBadDate(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store)

	req := transaction.CreateTransactionRequest{
		CategoryID: "cat-food",
		Amount:     10,
		Date:       "15/03/2024",
	}

	err := domain.CreateTransaction(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, transaction.ErrInvalidDateFormat)
}

func TestDeleteTransactionOwnership(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store)
	store.transactions["tr-1"] = entity.Transaction{ID: "tr-1", UserID: "user-1", CategoryID: "cat-food"}

	err := domain.DeleteTransaction(context.Background(), "user-2", "tr-1")
	assert.ErrorIs(t, err, transaction.ErrTransactionForbidden)
	assert.Len(t, store.transactions, 1)

	require.NoError(t, domain.DeleteTransaction(context.Background(), "user-1", "tr-1"))
	assert.Empty(t, store.transactions)

	err = domain.DeleteTransaction(context.Background(), "user-1", "tr-1")
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
}

func TestGetTransactionsByUserDecoratesCategoryName(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store)
	store.transactions["tr-1"] = entity.Transaction{
		ID:         "tr-1",
		UserID:     "user-1",
		CategoryID: "cat-food",
		Amount:     12,
		Date:       time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	result, err := domain.GetTransactionsByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Food & Dining", result[0].CategoryName)
	assert.Equal(t, "2024-03-10", result[0].Date)
}
