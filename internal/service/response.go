package service

import "time"

type CreateAccountResponse struct {
	AccountNumber  string
	OpeningBalance float64
	Message        string
}

type MutationResponse struct {
	AccountNumber string
	Balance       float64
	Message       string
}

type BalanceResponse struct {
	Name    string
	Balance float64
	Message string
}

type HistoryEntry struct {
	Type      string
	Amount    float64
	Balance   float64
	Timestamp time.Time
}

type HistoryResponse struct {
	Entries []HistoryEntry
	Message string
}
