package saved_transaction

type SavedTransactionRequest struct {
	CategoryID   string  `json:"category_id" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Description  string  `json:"description" validate:"max=255"`
	Frequency    string  `json:"frequency" validate:"required,oneof=DAILY MONTHLY NONE"`
	UpcomingDate string  `json:"upcoming_date" validate:"required,datetime=2006-01-02"`
}

// DueInformation is nil for dormant plans with no scheduled occurrence.
type SavedTransactionResponse struct {
	ID                string  `json:"id"`
	TransactionTypeID int     `json:"transaction_type_id"`
	CategoryName      string  `json:"category_name"`
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
	Frequency         string  `json:"frequency"`
	DueInformation    *string `json:"due_information"`
}

type SavedTransactionDetailResponse struct {
	ID                string  `json:"id"`
	CategoryID        string  `json:"category_id"`
	TransactionTypeID int     `json:"transaction_type_id"`
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
	Frequency         string  `json:"frequency"`
	UpcomingDate      string  `json:"upcoming_date"`
}
