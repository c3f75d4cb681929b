package savedTransactionService

import (
	"MyPockit/internal/api/auth"
	"MyPockit/internal/api/category"
	savedTransaction "MyPockit/internal/api/saved_transaction"
	"MyPockit/internal/entity"
	contextPkg "MyPockit/pkg/context"
	"MyPockit/pkg/response"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

func (s *savedTransactionDomainImpl) CreateSavedTransaction(ctx context.Context, userID string, req savedTransaction.SavedTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	authClient, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create auth repository client")
		return savedTransaction.ErrCreatePlan
	}

	exists, err := authClient.Users.ExistsByID(ctx, userID)
	if err != nil {
		return savedTransaction.ErrCreatePlan
	}
	if !exists {
		return auth.ErrUserNotFound
	}

	categoryClient, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return savedTransaction.ErrCreatePlan
	}

	cat, err := categoryClient.Categories.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return savedTransaction.ErrInvalidCategory
		}
		return savedTransaction.ErrCreatePlan
	}

	upcomingDate, err := time.Parse(dateLayout, req.UpcomingDate)
	if err != nil {
		return savedTransaction.ErrCreatePlan
	}

	id, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to generate saved transaction id")
		return savedTransaction.ErrCreatePlan
	}

	plan := entity.SavedTransaction{
		ID:                id,
		UserID:            userID,
		CategoryID:        req.CategoryID,
		TransactionTypeID: cat.TransactionTypeID,
		Amount:            req.Amount,
		Description:       req.Description,
		Frequency:         entity.TransactionFrequency(req.Frequency),
		UpcomingDate:      upcomingDate,
	}

	repoClient, err := s.savedTransactionRepository.NewClient(false)
	if err != nil {
		return savedTransaction.ErrCreatePlan
	}

	if err := repoClient.Plans.SavePlan(ctx, plan); err != nil {
		return savedTransaction.ErrCreatePlan
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"plan_id":    id,
		"user_id":    userID,
	}).Info("saved transaction created")

	return nil
}

// AddSavedTransaction materializes the plan's current occurrence: it records
// a real transaction dated on the plan's due date and advances the due date
// by the plan's recurrence. Both writes share one database transaction so a
// due date is never consumed twice or advanced without its transaction.
func (s *savedTransactionDomainImpl) AddSavedTransaction(ctx context.Context, planID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.savedTransactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create saved transaction repository client")
		return savedTransaction.ErrAddPlan
	}

	plan, err := repoClient.Plans.GetPlanByID(ctx, planID)
	if err != nil {
		_ = repoClient.Rollback()
		if errors.Is(err, savedTransaction.ErrPlanNotFound) {
			return savedTransaction.ErrPlanNotFound
		}
		return savedTransaction.ErrAddPlan
	}

	authClient, err := s.authRepository.NewClient(false)
	if err != nil {
		_ = repoClient.Rollback()
		return savedTransaction.ErrAddPlan
	}

	user, err := authClient.Users.GetByID(ctx, plan.UserID)
	if err != nil {
		_ = repoClient.Rollback()
		if errors.Is(err, auth.ErrUserNotFound) {
			// the owner vanished mid-operation; report it as an engine
			// failure but keep the original message for the caller
			return response.NewError(http.StatusInternalServerError, err.Error())
		}
		return savedTransaction.ErrAddPlan
	}

	categoryClient, err := s.categoryRepository.NewClient(false)
	if err != nil {
		_ = repoClient.Rollback()
		return savedTransaction.ErrAddPlan
	}

	cat, err := categoryClient.Categories.GetCategoryByID(ctx, plan.CategoryID)
	if err != nil {
		_ = repoClient.Rollback()
		if errors.Is(err, category.ErrCategoryNotFound) {
			return savedTransaction.ErrInvalidCategory
		}
		return savedTransaction.ErrAddPlan
	}

	transactionID, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		_ = repoClient.Rollback()
		return savedTransaction.ErrAddPlan
	}

	materialized := entity.Transaction{
		ID:          transactionID,
		UserID:      user.ID,
		CategoryID:  cat.ID,
		Description: plan.Description,
		Amount:      plan.Amount,
		Date:        plan.UpcomingDate,
	}

	if err := repoClient.Transactions.CreateTransaction(ctx, materialized); err != nil {
		_ = repoClient.Rollback()
		return savedTransaction.ErrAddPlan
	}

	if next, ok := NextUpcomingDate(plan.Frequency, plan.UpcomingDate); ok {
		if err := repoClient.Plans.AdvancePlanDate(ctx, plan.ID, next); err != nil {
			_ = repoClient.Rollback()
			return savedTransaction.ErrAddPlan
		}
	}

	if err := repoClient.Commit(); err != nil {
		_ = repoClient.Rollback()
		return savedTransaction.ErrAddPlan
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"plan_id":        plan.ID,
		"transaction_id": transactionID,
	}).Info("saved transaction materialized")

	return nil
}

// EditSavedTransaction is a full replace of the mutable fields; there is no
// partial update. The transaction type is recomputed from the new category.
func (s *savedTransactionDomainImpl) EditSavedTransaction(ctx context.Context, planID string, req savedTransaction.SavedTransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.savedTransactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create saved transaction repository client")
		return savedTransaction.ErrEditPlan
	}

	plan, err := repoClient.Plans.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, savedTransaction.ErrPlanNotFound) {
			return savedTransaction.ErrPlanNotFound
		}
		return savedTransaction.ErrEditPlan
	}

	categoryClient, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return savedTransaction.ErrEditPlan
	}

	cat, err := categoryClient.Categories.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return savedTransaction.ErrInvalidCategory
		}
		return savedTransaction.ErrEditPlan
	}

	upcomingDate, err := time.Parse(dateLayout, req.UpcomingDate)
	if err != nil {
		return savedTransaction.ErrEditPlan
	}

	plan.CategoryID = req.CategoryID
	plan.TransactionTypeID = cat.TransactionTypeID
	plan.Amount = req.Amount
	plan.Description = req.Description
	plan.Frequency = entity.TransactionFrequency(req.Frequency)
	plan.UpcomingDate = upcomingDate

	if err := repoClient.Plans.UpdatePlan(ctx, plan); err != nil {
		return savedTransaction.ErrEditPlan
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"plan_id":    planID,
	}).Info("saved transaction edited")

	return nil
}

func (s *savedTransactionDomainImpl) DeleteSavedTransaction(ctx context.Context, planID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.savedTransactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create saved transaction repository client")
		return savedTransaction.ErrDeletePlan
	}

	exists, err := repoClient.Plans.ExistsPlanByID(ctx, planID)
	if err != nil {
		return savedTransaction.ErrDeletePlan
	}
	if !exists {
		return savedTransaction.ErrPlanNotFound
	}

	if err := repoClient.Plans.DeletePlanByID(ctx, planID); err != nil {
		if errors.Is(err, savedTransaction.ErrPlanNotFound) {
			return savedTransaction.ErrPlanNotFound
		}
		return savedTransaction.ErrDeletePlan
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"plan_id":    planID,
	}).Info("saved transaction deleted")

	return nil
}

// SkipSavedTransaction advances the due date without recording a transaction,
// forgoing the current occurrence.
func (s *savedTransactionDomainImpl) SkipSavedTransaction(ctx context.Context, planID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.savedTransactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create saved transaction repository client")
		return savedTransaction.ErrAddPlan
	}

	plan, err := repoClient.Plans.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, savedTransaction.ErrPlanNotFound) {
			return savedTransaction.ErrPlanNotFound
		}
		return savedTransaction.ErrAddPlan
	}

	if next, ok := NextUpcomingDate(plan.Frequency, plan.UpcomingDate); ok {
		if err := repoClient.Plans.AdvancePlanDate(ctx, plan.ID, next); err != nil {
			return savedTransaction.ErrAddPlan
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"plan_id":    planID,
	}).Info("saved transaction skipped for period")

	return nil
}

func (s *savedTransactionDomainImpl) GetSavedTransactionsByUser(ctx context.Context, userID string) ([]savedTransaction.SavedTransactionResponse, error) {
	return s.listByUser(ctx, userID, false)
}

func (s *savedTransactionDomainImpl) GetSavedTransactionsByUserForCurrentMonth(ctx context.Context, userID string) ([]savedTransaction.SavedTransactionResponse, error) {
	return s.listByUser(ctx, userID, true)
}

func (s *savedTransactionDomainImpl) listByUser(ctx context.Context, userID string, currentMonthOnly bool) ([]savedTransaction.SavedTransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	today := s.now()

	authClient, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create auth repository client")
		return nil, savedTransaction.ErrFetchPlans
	}

	exists, err := authClient.Users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, savedTransaction.ErrFetchPlans
	}
	if !exists {
		return nil, auth.ErrUserNotFound
	}

	repoClient, err := s.savedTransactionRepository.NewClient(false)
	if err != nil {
		return nil, savedTransaction.ErrFetchPlans
	}

	plans, err := repoClient.Plans.GetPlansByUserID(ctx, userID)
	if err != nil {
		return nil, savedTransaction.ErrFetchPlans
	}

	categoryClient, err := s.categoryRepository.NewClient(false)
	if err != nil {
		return nil, savedTransaction.ErrFetchPlans
	}

	result := make([]savedTransaction.SavedTransactionResponse, 0, len(plans))
	for _, plan := range plans {
		// month-of-year match only; a plan from another year sharing the
		// month number is included
		if currentMonthOnly && plan.UpcomingDate.Month() != today.Month() {
			continue
		}

		cat, err := categoryClient.Categories.GetCategoryByID(ctx, plan.CategoryID)
		if err != nil {
			if errors.Is(err, category.ErrCategoryNotFound) {
				s.log.WithFields(logrus.Fields{
					"request_id":  requestID,
					"plan_id":     plan.ID,
					"category_id": plan.CategoryID,
				}).Error("plan references a missing category")
				return nil, savedTransaction.ErrInvalidCategoryReference
			}
			return nil, savedTransaction.ErrFetchPlans
		}

		result = append(result, savedTransaction.SavedTransactionResponse{
			ID:                plan.ID,
			TransactionTypeID: plan.TransactionTypeID,
			CategoryName:      cat.Name,
			Amount:            plan.Amount,
			Description:       plan.Description,
			Frequency:         string(plan.Frequency),
			DueInformation:    DueInformation(plan, today),
		})
	}

	return result, nil
}

func (s *savedTransactionDomainImpl) GetSavedTransactionByID(ctx context.Context, planID string) (savedTransaction.SavedTransactionDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repoClient, err := s.savedTransactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("failed to create saved transaction repository client")
		return savedTransaction.SavedTransactionDetailResponse{}, savedTransaction.ErrFetchPlan
	}

	plan, err := repoClient.Plans.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, savedTransaction.ErrPlanNotFound) {
			return savedTransaction.SavedTransactionDetailResponse{}, savedTransaction.ErrPlanNotFound
		}
		return savedTransaction.SavedTransactionDetailResponse{}, savedTransaction.ErrFetchPlan
	}

	var upcomingDate string
	if !plan.UpcomingDate.IsZero() {
		upcomingDate = plan.UpcomingDate.Format(dateLayout)
	}

	return savedTransaction.SavedTransactionDetailResponse{
		ID:                plan.ID,
		CategoryID:        plan.CategoryID,
		TransactionTypeID: plan.TransactionTypeID,
		Amount:            plan.Amount,
		Description:       plan.Description,
		Frequency:         string(plan.Frequency),
		UpcomingDate:      upcomingDate,
	}, nil
}
