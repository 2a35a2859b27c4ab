package v1

type CreateAccountRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type BalanceRequest struct {
	AccountNumber string `json:"account_number" validate:"required,acct"`
}

type AmountRequest struct {
	AccountNumber string  `json:"account_number" validate:"required,acct"`
	Amount        float64 `json:"amount"`
}

type TransactionsRequest struct {
	AccountNumber string `json:"account_number" validate:"required,acct"`
}
