package transaction

import (
	"MyPockit/pkg/response"
	"net/http"
)

var (
	ErrTransactionNotFound  = response.NewError(http.StatusNotFound, "transaction not found")
	ErrInvalidCategory      = response.NewError(http.StatusBadRequest, "Invalid category selected for transaction")
	ErrCreateTransaction    = response.NewError(http.StatusInternalServerError, "Failed to create transaction. Try again later")
	ErrFetchTransactions    = response.NewError(http.StatusInternalServerError, "Failed to fetch transactions. Try again later")
	ErrDeleteTransaction    = response.NewError(http.StatusInternalServerError, "Failed to delete transaction. Try again later.")
	ErrTransactionForbidden = response.NewError(http.StatusForbidden, "transaction does not belong to the user")
	ErrInvalidDateFormat    = response.NewError(http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
)
