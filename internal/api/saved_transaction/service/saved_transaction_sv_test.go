package savedTransactionService

import (
	"MyPockit/internal/api/auth"
	authRepository "MyPockit/internal/api/auth/repository"
	"MyPockit/internal/api/category"
	categoryRepository "MyPockit/internal/api/category/repository"
	savedTransaction "MyPockit/internal/api/saved_transaction"
	savedTransactionRepository "MyPockit/internal/api/saved_transaction/repository"
	"MyPockit/internal/entity"
	"MyPockit/pkg/response"
	"MyPockit/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is the shared backing state for the fake repositories.
type fakeStore struct {
	plans        map[string]entity.SavedTransaction
	transactions []entity.Transaction
	users        map[string]entity.User
	categories   map[string]entity.Category

	failAdvance bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		plans: map[string]entity.SavedTransaction{},
		users: map[string]entity.User{
			"user-1": {ID: "user-1", Username: "pat", Email: "pat@example.com"},
		},
		categories: map[string]entity.Category{
			"cat-rent":   {ID: "cat-rent", Name: "Bills & Utilities", TransactionTypeID: entity.TransactionTypeExpenseID, Enabled: true},
			"cat-salary": {ID: "cat-salary", Name: "Salary", TransactionTypeID: entity.TransactionTypeIncomeID, Enabled: true},
		},
	}
}

// staged buffers writes issued inside a transactional client until Commit.
type staged struct {
	plans        []entity.SavedTransaction
	advances     map[string]time.Time
	deletes      []string
	transactions []entity.Transaction
}

type fakeSavedRepo struct {
	store *fakeStore
}

func (f *fakeSavedRepo) NewClient(tx bool) (savedTransactionRepository.Client, error) {
	var st *staged
	commit := func() error { return nil }
	rollback := func() error { return nil }

	if tx {
		st = &staged{advances: map[string]time.Time{}}
		commit = func() error {
			for _, p := range st.plans {
				f.store.plans[p.ID] = p
			}
			for id, d := range st.advances {
				p := f.store.plans[id]
				p.UpcomingDate = d
				f.store.plans[id] = p
			}
			for _, id := range st.deletes {
				delete(f.store.plans, id)
			}
			f.store.transactions = append(f.store.transactions, st.transactions...)
			return nil
		}
		rollback = func() error { return nil }
	}

	return savedTransactionRepository.Client{
		Plans:        &fakePlans{store: f.store, staged: st},
		Transactions: &fakeTransactions{store: f.store, staged: st},
		Commit:       commit,
		Rollback:     rollback,
	}, nil
}

type fakePlans struct {
	store  *fakeStore
	staged *staged
}

func (f *fakePlans) SavePlan(_ context.Context, data entity.SavedTransaction) error {
	if f.staged != nil {
		f.staged.plans = append(f.staged.plans, data)
		return nil
	}
	f.store.plans[data.ID] = data
	return nil
}

func (f *fakePlans) GetPlanByID(_ context.Context, id string) (entity.SavedTransaction, error) {
	plan, ok := f.store.plans[id]
	if !ok {
		return entity.SavedTransaction{}, savedTransaction.ErrPlanNotFound
	}
	return plan, nil
}

func (f *fakePlans) ExistsPlanByID(_ context.Context, id string) (bool, error) {
	_, ok := f.store.plans[id]
	return ok, nil
}

func (f *fakePlans) GetPlansByUserID(_ context.Context, userID string) ([]entity.SavedTransaction, error) {
	var result []entity.SavedTransaction
	for _, plan := range f.store.plans {
		if plan.UserID == userID {
			result = append(result, plan)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpcomingDate.Before(result[j].UpcomingDate)
	})
	return result, nil
}

func (f *fakePlans) UpdatePlan(_ context.Context, data entity.SavedTransaction) error {
	if _, ok := f.store.plans[data.ID]; !ok {
		return savedTransaction.ErrPlanNotFound
	}
	if f.staged != nil {
		f.staged.plans = append(f.staged.plans, data)
		return nil
	}
	f.store.plans[data.ID] = data
	return nil
}

func (f *fakePlans) AdvancePlanDate(_ context.Context, id string, upcomingDate time.Time) error {
	if f.store.failAdvance {
		return errors.New("connection reset")
	}
	if _, ok := f.store.plans[id]; !ok {
		return savedTransaction.ErrPlanNotFound
	}
	if f.staged != nil {
		f.staged.advances[id] = upcomingDate
		return nil
	}
	plan := f.store.plans[id]
	plan.UpcomingDate = upcomingDate
	f.store.plans[id] = plan
	return nil
}

func (f *fakePlans) DeletePlanByID(_ context.Context, id string) error {
	if _, ok := f.store.plans[id]; !ok {
		return savedTransaction.ErrPlanNotFound
	}
	if f.staged != nil {
		f.staged.deletes = append(f.staged.deletes, id)
		return nil
	}
	delete(f.store.plans, id)
	return nil
}

type fakeTransactions struct {
	store  *fakeStore
	staged *staged
}

func (f *fakeTransactions) CreateTransaction(_ context.Context, data entity.Transaction) error {
	if f.staged != nil {
		f.staged.transactions = append(f.staged.transactions, data)
		return nil
	}
	f.store.transactions = append(f.store.transactions, data)
	return nil
}

type fakeAuthRepo struct {
	store *fakeStore
}

func (f *fakeAuthRepo) NewClient(bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    &fakeUsers{store: f.store},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUsers struct {
	store *fakeStore
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	f.store.users[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.store.users[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	for _, user := range f.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUsers) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := f.store.users[id]
	return ok, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, user := range f.store.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) UpdateVerificationStatus(_ context.Context, email string, verified bool) error {
	for id, user := range f.store.users {
		if user.Email == email {
			user.IsVerified = verified
			f.store.users[id] = user
			return nil
		}
	}
	return auth.ErrUserNotFound
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
	return []entity.TransactionType{
		{ID: entity.TransactionTypeIncomeID, Name: entity.TransactionTypeIncome},
		{ID: entity.TransactionTypeExpenseID, Name: entity.TransactionTypeExpense},
	}, nil
}

func newTestDomain(store *fakeStore, today time.Time) *savedTransactionDomainImpl {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &savedTransactionDomainImpl{
		log:                        logger,
		savedTransactionRepository: &fakeSavedRepo{store: store},
		categoryRepository:         &fakeCategoryRepo{store: store},
		authRepository:             &fakeAuthRepo{store: store},
		utils:                      utils.New(),
		now:                        func() time.Time { return today },
	}
}

func seedPlan(store *fakeStore, id string, frequency entity.TransactionFrequency, upcoming time.Time) {
	store.plans[id] = entity.SavedTransaction{
		ID:                id,
		UserID:            "user-1",
		CategoryID:        "cat-rent",
		TransactionTypeID: entity.TransactionTypeExpenseID,
		Amount:            1500,
		Description:       "Monthly rent",
		Frequency:         frequency,
		UpcomingDate:      upcoming,
	}
}

func TestCreateSavedTransaction(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))

	req := savedTransaction.SavedTransactionRequest{
		CategoryID:   "cat-salary",
		Amount:       4200,
		Description:  "Paycheck",
		Frequency:    "MONTHLY",
		UpcomingDate: "2024-04-01",
	}

	err := domain.CreateSavedTransaction(context.Background(), "user-1", req)
	require.NoError(t, err)

	require.Len(t, store.plans, 1)
	for _, plan := range store.plans {
		assert.NotEmpty(t, plan.ID)
		assert.Equal(t, "user-1", plan.UserID)
		assert.Equal(t, "cat-salary", plan.CategoryID)
		assert.Equal(t, entity.TransactionTypeIncomeID, plan.TransactionTypeID)
		assert.Equal(t, float64(4200), plan.Amount)
		assert.Equal(t, entity.FrequencyMonthly, plan.Frequency)
		assert.Equal(t, date(2024, time.April, 1), plan.UpcomingDate)
	}
}

func TestCreateSavedTransactionUnknownUser(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))

	req := savedTransaction.SavedTransactionRequest{
		CategoryID:   "cat-rent",
		Amount:       100,
		Frequency:    "DAILY",
		UpcomingDate: "2024-04-01",
	}

	err := domain.CreateSavedTransaction(context.Background(), "ghost", req)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
	assert.Empty(t, store.plans)
}

func TestCreateSavedTransactionInvalidCategory(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))

	req := savedTransaction.SavedTransactionRequest{
		CategoryID:   "cat-missing",
		Amount:       100,
		Frequency:    "DAILY",
		UpcomingDate: "2024-04-01",
	}

	err := domain.CreateSavedTransaction(context.Background(), "user-1", req)
	assert.ErrorIs(t, err, savedTransaction.ErrInvalidCategory)
	assert.Empty(t, store.plans)
}

func TestAddSavedTransaction(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.February, 1))
	seedPlan(store, "plan-1", entity.FrequencyMonthly, date(2024, time.January, 31))

	err := domain.AddSavedTransaction(context.Background(), "plan-1")
	require.NoError(t, err)

	require.Len(t, store.transactions, 1)
	tr := store.transactions[0]
	assert.Equal(t, "user-1", tr.UserID)
	assert.Equal(t, "cat-rent", tr.CategoryID)
	assert.Equal(t, "Monthly rent", tr.Description)
	assert.Equal(t, float64(1500), tr.Amount)
	assert.Equal(t, date(2024, time.January, 31), tr.Date, "transaction is dated on the consumed due date")

	assert.Equal(t, date(2024, time.February, 29), store.plans["plan-1"].UpcomingDate)
}

func TestAddSavedTransactionNotFound(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))

	err := domain.AddSavedTransaction(context.Background(), "plan-missing")
	assert.ErrorIs(t, err, savedTransaction.ErrPlanNotFound)
	assert.Empty(t, store.transactions)
}

func TestAddSavedTransactionRollsBackOnAdvanceFailure(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyDaily, date(2024, time.March, 15))
	store.failAdvance = true

	err := domain.AddSavedTransaction(context.Background(), "plan-1")
	assert.ErrorIs(t, err, savedTransaction.ErrAddPlan)

	assert.Empty(t, store.transactions, "transaction insert must not survive a failed advance")
	assert.Equal(t, date(2024, time.March, 15), store.plans["plan-1"].UpcomingDate)
}

func TestAddSavedTransactionMissingUser(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyDaily, date(2024, time.March, 15))
	delete(store.users, "user-1")

	err := domain.AddSavedTransaction(context.Background(), "plan-1")
	require.Error(t, err)

	var respErr *response.Error
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusInternalServerError, respErr.Code)
	assert.Equal(t, auth.ErrUserNotFound.Error(), respErr.Error(), "original message is kept")
	assert.Empty(t, store.transactions)
}

func TestAddSavedTransactionNoRecurrence(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyNone, date(2024, time.March, 15))

	err := domain.AddSavedTransaction(context.Background(), "plan-1")
	require.NoError(t, err)

	assert.Len(t, store.transactions, 1)
	assert.Equal(t, date(2024, time.March, 15), store.plans["plan-1"].UpcomingDate,
		"a one-off plan keeps its last due date")
}

func TestEditSavedTransaction(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyMonthly, date(2024, time.April, 1))

	req := savedTransaction.SavedTransactionRequest{
		CategoryID:   "cat-salary",
		Amount:       5000,
		Description:  "Updated paycheck",
		Frequency:    "DAILY",
		UpcomingDate: "2024-05-20",
	}

	err := domain.EditSavedTransaction(context.Background(), "plan-1", req)
	require.NoError(t, err)

	plan := store.plans["plan-1"]
	assert.Equal(t, "cat-salary", plan.CategoryID)
	assert.Equal(t, entity.TransactionTypeIncomeID, plan.TransactionTypeID, "transaction type follows the new category")
	assert.Equal(t, float64(5000), plan.Amount)
	assert.Equal(t, "Updated paycheck", plan.Description)
	assert.Equal(t, entity.FrequencyDaily, plan.Frequency)
	assert.Equal(t, date(2024, time.May, 20), plan.UpcomingDate)
}

func TestEditSavedTransactionInvalidCategory(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyMonthly, date(2024, time.April, 1))

	req := savedTransaction.SavedTransactionRequest{
		CategoryID:   "cat-missing",
		Amount:       5000,
		Frequency:    "DAILY",
		UpcomingDate: "2024-05-20",
	}

	err := domain.EditSavedTransaction(context.Background(), "plan-1", req)
	assert.ErrorIs(t, err, savedTransaction.ErrInvalidCategory)
	assert.Equal(t, "cat-rent", store.plans["plan-1"].CategoryID, "plan is untouched")
}

func TestDeleteSavedTransactionTwice(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyDaily, date(2024, time.March, 15))

	require.NoError(t, domain.DeleteSavedTransaction(context.Background(), "plan-1"))
	assert.Empty(t, store.plans)

	err := domain.DeleteSavedTransaction(context.Background(), "plan-1")
	assert.ErrorIs(t, err, savedTransaction.ErrPlanNotFound)
}

func TestSkipSavedTransaction(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyDaily, date(2024, time.March, 15))

	err := domain.SkipSavedTransaction(context.Background(), "plan-1")
	require.NoError(t, err)

	assert.Empty(t, store.transactions, "skip never records a transaction")
	assert.Equal(t, date(2024, time.March, 16), store.plans["plan-1"].UpcomingDate)
}

func TestSkipSavedTransactionNoRecurrence(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyNone, date(2024, time.March, 15))

	err := domain.SkipSavedTransaction(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 15), store.plans["plan-1"].UpcomingDate)
}

func TestGetSavedTransactionsByUser(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-late", entity.FrequencyMonthly, date(2024, time.April, 10))
	seedPlan(store, "plan-due", entity.FrequencyDaily, date(2024, time.March, 15))

	result, err := domain.GetSavedTransactionsByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "plan-due", result[0].ID, "ordered by upcoming date ascending")
	require.NotNil(t, result[0].DueInformation)
	assert.Equal(t, "Due on Today", *result[0].DueInformation)
	assert.Equal(t, "Bills & Utilities", result[0].CategoryName)

	assert.Equal(t, "plan-late", result[1].ID)
	require.NotNil(t, result[1].DueInformation)
	assert.Equal(t, "Due on 2024-04-10", *result[1].DueInformation)
}

func TestGetSavedTransactionsByUserUnknownUser(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))

	_, err := domain.GetSavedTransactionsByUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestGetSavedTransactionsByUserBrokenCategoryReference(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyDaily, date(2024, time.March, 15))
	delete(store.categories, "cat-rent")

	_, err := domain.GetSavedTransactionsByUser(context.Background(), "user-1")
	assert.ErrorIs(t, err, savedTransaction.ErrInvalidCategoryReference,
		"one broken reference aborts the whole listing")
}

func TestGetSavedTransactionsByUserForCurrentMonth(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-this-month", entity.FrequencyDaily, date(2024, time.March, 20))
	seedPlan(store, "plan-next-month", entity.FrequencyDaily, date(2024, time.April, 2))
	// same month number in another year still matches
	seedPlan(store, "plan-last-year", entity.FrequencyDaily, date(2023, time.March, 1))

	result, err := domain.GetSavedTransactionsByUserForCurrentMonth(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "plan-last-year", result[0].ID)
	assert.Equal(t, "plan-this-month", result[1].ID)
}

func TestGetSavedTransactionByID(t *testing.T) {
	store := newFakeStore()
	domain := newTestDomain(store, date(2024, time.March, 15))
	seedPlan(store, "plan-1", entity.FrequencyMonthly, date(2024, time.April, 1))

	detail, err := domain.GetSavedTransactionByID(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Equal(t, "plan-1", detail.ID)
	assert.Equal(t, "cat-rent", detail.CategoryID)
	assert.Equal(t, entity.TransactionTypeExpenseID, detail.TransactionTypeID)
	assert.Equal(t, "MONTHLY", detail.Frequency)
	assert.Equal(t, "2024-04-01", detail.UpcomingDate)

	_, err = domain.GetSavedTransactionByID(context.Background(), "plan-missing")
	assert.ErrorIs(t, err, savedTransaction.ErrPlanNotFound)
}
