package service

import (
	"context"
	"fmt"

	"github.com/mbibank/ledger/internal/config"
	"github.com/mbibank/ledger/internal/constants"
	"github.com/mbibank/ledger/internal/repository"
	"go.uber.org/zap"
)

type QueryService interface {
	CheckBalance(ctx context.Context, accountNumber string) (BalanceResponse, error)
	History(ctx context.Context, accountNumber string) (HistoryResponse, error)
}

type query struct {
	accounts     repository.AccountRepository
	transactions repository.TransactionRepository
	cfg          *config.Config
	logger       *zap.Logger
}

func NewQueryService(accounts repository.AccountRepository, transactions repository.TransactionRepository,
	cfg *config.Config, logger *zap.Logger) QueryService {
	return &query{accounts: accounts, transactions: transactions, cfg: cfg, logger: logger}
}

// CheckBalance is an independent read path over the account table. A
// missing table file gets its own wording here, distinct from the load
// path used by deposits and withdrawals.
func (s *query) CheckBalance(ctx context.Context, accountNumber string) (BalanceResponse, error) {
	acc, err := s.accounts.FindByNumber(ctx, accountNumber)
	if err != nil {
		s.logger.Warn("Balance check failed", zap.String("account", accountNumber), zap.Error(err))
		return BalanceResponse{}, storageError(err, constants.ErrCodeAccountsFileMissing)
	}

	return BalanceResponse{
		Name:    acc.Name,
		Balance: acc.Balance,
		Message: fmt.Sprintf("Hello %s! Current balance: $%.2f", acc.Name, acc.Balance),
	}, nil
}

// History verifies the account exists, then returns the most recent
// entries for it in file order, truncated from the tail of the table.
func (s *query) History(ctx context.Context, accountNumber string) (HistoryResponse, error) {
	if _, err := s.accounts.FindByNumber(ctx, accountNumber); err != nil {
		return HistoryResponse{}, storageError(err, constants.ErrCodeNoAccounts)
	}

	transactions, err := s.transactions.ListByAccount(ctx, accountNumber)
	if err != nil {
		s.logger.Warn("History scan failed", zap.String("account", accountNumber), zap.Error(err))
		return HistoryResponse{}, storageError(err, constants.ErrCodeNoAccounts)
	}

	if len(transactions) == 0 {
		return HistoryResponse{Message: "No transactions found for this account"}, nil
	}

	limit := s.cfg.Ledger.HistoryLimit
	if len(transactions) > limit {
		transactions = transactions[len(transactions)-limit:]
	}

	entries := make([]HistoryEntry, 0, len(transactions))
	for _, tx := range transactions {
		entries = append(entries, HistoryEntry{
			Type:      string(tx.Type),
			Amount:    tx.Amount,
			Balance:   tx.Balance,
			Timestamp: tx.Timestamp,
		})
	}

	return HistoryResponse{Entries: entries, Message: "Transaction history"}, nil
}
