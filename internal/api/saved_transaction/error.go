package saved_transaction

import (
	"MyPockit/pkg/response"
	"net/http"
)

// The "Try again later" messages are user-facing copy the frontend matches on.
// Skip deliberately reuses the add message.
var (
	ErrPlanNotFound             = response.NewError(http.StatusNotFound, "saved transaction not found")
	ErrInvalidCategory          = response.NewError(http.StatusBadRequest, "Invalid category selected for transaction")
	ErrCreatePlan               = response.NewError(http.StatusInternalServerError, "Failed to create transaction. Try again later")
	ErrAddPlan                  = response.NewError(http.StatusInternalServerError, "Failed to add transaction. Try again later")
	ErrEditPlan                 = response.NewError(http.StatusInternalServerError, "Failed to edit transaction. Try again later")
	ErrDeletePlan               = response.NewError(http.StatusInternalServerError, "Failed to delete transaction. Try again later.")
	ErrFetchPlans               = response.NewError(http.StatusInternalServerError, "Failed to fetch transactions. Try again later")
	ErrInvalidCategoryReference = response.NewError(http.StatusInternalServerError, "Failed to fetch transactions. Invalid category reference.")
	ErrFetchPlan                = response.NewError(http.StatusInternalServerError, "Failed to fetch transaction. Try again later.")
)
