package model

import "time"

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "Deposit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
)

// Transaction is one immutable row of the transaction table. Amount is
// signed: positive for deposits, negative for withdrawals. Balance is the
// account balance immediately after the operation.
type Transaction struct {
	AccountNumber string
	Type          TransactionType
	Amount        float64
	Balance       float64
	Timestamp     time.Time
}
