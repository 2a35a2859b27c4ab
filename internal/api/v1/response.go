package v1

type CreateAccountResponse struct {
	AccountNumber  string  `json:"account_number"`
	OpeningBalance float64 `json:"opening_balance"`
	Message        string  `json:"message"`
}

type BalanceResponse struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Message string  `json:"message"`
}

type MutationResponse struct {
	AccountNumber string  `json:"account_number"`
	Balance       float64 `json:"balance"`
	Message       string  `json:"message"`
}

type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Message      string                `json:"message"`
}

type TransactionResponse struct {
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Balance   float64 `json:"balance"`
	Timestamp string  `json:"timestamp"`
}
