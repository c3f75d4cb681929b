package category

type CategoryResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	TransactionTypeID int    `json:"transaction_type_id"`
	TransactionType   string `json:"transaction_type"`
	Enabled           bool   `json:"enabled"`
}

type TransactionTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
