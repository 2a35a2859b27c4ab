package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/mbibank/ledger/internal/config"
	"github.com/mbibank/ledger/internal/constants"
	"github.com/mbibank/ledger/internal/model"
	"github.com/mbibank/ledger/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const minimumAge = 18

// accountNumberAttempts bounds the random draws when a freshly generated
// number collides with an existing row.
const accountNumberAttempts = 5

type AccountService interface {
	Create(ctx context.Context, cmd CreateAccountCommand) (CreateAccountResponse, error)
	Deposit(ctx context.Context, cmd AmountCommand) (MutationResponse, error)
	Withdraw(ctx context.Context, cmd AmountCommand) (MutationResponse, error)
}

type account struct {
	accounts     repository.AccountRepository
	transactions repository.TransactionRepository
	cfg          *config.Config
	logger       *zap.Logger
}

func NewAccountService(accounts repository.AccountRepository, transactions repository.TransactionRepository,
	cfg *config.Config, logger *zap.Logger) AccountService {
	return &account{accounts: accounts, transactions: transactions, cfg: cfg, logger: logger}
}

func (s *account) Create(ctx context.Context, cmd CreateAccountCommand) (CreateAccountResponse, error) {
	name := cases.Title(language.English).String(strings.TrimSpace(cmd.Name))
	if name == "" {
		return CreateAccountResponse{}, NewServiceError(constants.ErrCodeEmptyName, errors.New("name cannot be empty"))
	}

	if cmd.Age < minimumAge {
		return CreateAccountResponse{}, NewServiceError(constants.ErrCodeUnderage,
			fmt.Errorf("age %d is below the minimum of %d", cmd.Age, minimumAge))
	}

	number, err := s.newAccountNumber(ctx)
	if err != nil {
		s.logger.Error("Failed to allocate account number", zap.Error(err))
		return CreateAccountResponse{}, storageError(err, constants.ErrCodeStorage)
	}

	acc := model.Account{Name: name, Number: number, Balance: s.cfg.Ledger.OpeningBalance}
	if err := s.accounts.Append(ctx, acc); err != nil {
		s.logger.Error("Failed to append account row", zap.String("account", number), zap.Error(err))
		return CreateAccountResponse{}, NewServiceError(constants.ErrCodeStorage, err)
	}

	s.logger.Info("Account created",
		zap.String("account", number),
		zap.Float64("openingBalance", acc.Balance))

	return CreateAccountResponse{
		AccountNumber:  number,
		OpeningBalance: acc.Balance,
		Message:        "Account created successfully",
	}, nil
}

func (s *account) Deposit(ctx context.Context, cmd AmountCommand) (MutationResponse, error) {
	if cmd.Amount <= 0 {
		return MutationResponse{}, NewServiceError(constants.ErrCodeInvalidAmount,
			errors.New("deposit amount must be positive"))
	}

	acc, err := s.accounts.FindByNumber(ctx, cmd.AccountNumber)
	if err != nil {
		return MutationResponse{}, storageError(err, constants.ErrCodeNoAccounts)
	}

	balance := acc.Balance + cmd.Amount
	msg := fmt.Sprintf("Deposited $%.2f. Current balance: $%.2f", cmd.Amount, balance)

	return s.applyMutation(ctx, acc.Number, balance, model.Transaction{
		AccountNumber: acc.Number,
		Type:          model.TransactionTypeDeposit,
		Amount:        cmd.Amount,
		Balance:       balance,
		Timestamp:     time.Now(),
	}, msg)
}

func (s *account) Withdraw(ctx context.Context, cmd AmountCommand) (MutationResponse, error) {
	if cmd.Amount <= 0 {
		return MutationResponse{}, NewServiceError(constants.ErrCodeInvalidAmount,
			errors.New("withdrawal amount must be positive"))
	}

	acc, err := s.accounts.FindByNumber(ctx, cmd.AccountNumber)
	if err != nil {
		return MutationResponse{}, storageError(err, constants.ErrCodeNoAccounts)
	}

	if cmd.Amount > acc.Balance {
		return MutationResponse{}, NewServiceError(constants.ErrCodeInsufficientFunds,
			fmt.Errorf("withdrawal of %.2f exceeds balance %.2f", cmd.Amount, acc.Balance))
	}

	balance := acc.Balance - cmd.Amount
	msg := fmt.Sprintf("Withdrew $%.2f. Current balance: $%.2f", cmd.Amount, balance)

	return s.applyMutation(ctx, acc.Number, balance, model.Transaction{
		AccountNumber: acc.Number,
		Type:          model.TransactionTypeWithdrawal,
		Amount:        -cmd.Amount,
		Balance:       balance,
		Timestamp:     time.Now(),
	}, msg)
}

// applyMutation persists the new balance, then appends the transaction
// row. The two writes are not atomic: a transaction-append failure is
// reported but the balance rewrite already went through.
func (s *account) applyMutation(ctx context.Context, number string, balance float64,
	tx model.Transaction, msg string) (MutationResponse, error) {
	if err := s.accounts.UpdateBalance(ctx, number, balance); err != nil {
		s.logger.Error("Failed to persist balance",
			zap.String("account", number),
			zap.Float64("balance", balance),
			zap.Error(err))
		return MutationResponse{}, storageError(err, constants.ErrCodeNoAccounts)
	}

	if err := s.transactions.Append(ctx, &tx); err != nil {
		s.logger.Error("Balance persisted but transaction append failed",
			zap.String("account", number),
			zap.String("type", string(tx.Type)),
			zap.Error(err))
		return MutationResponse{}, NewServiceError(constants.ErrCodeStorage, err)
	}

	s.logger.Info("Balance updated",
		zap.String("account", number),
		zap.String("type", string(tx.Type)),
		zap.Float64("amount", tx.Amount),
		zap.Float64("balance", balance))

	return MutationResponse{AccountNumber: number, Balance: balance, Message: msg}, nil
}

func (s *account) newAccountNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		n := rand.Int63n(9_000_000_000) + 1_000_000_000
		number := strconv.FormatInt(n, 10)

		_, err := s.accounts.FindByNumber(ctx, number)
		if errors.Is(err, repository.ErrAccountNotFound) || errors.Is(err, repository.ErrNoAccountsFile) {
			return number, nil
		}
		if err != nil {
			return "", err
		}
		// number already taken, draw again
	}

	return "", errors.New("could not allocate an unused account number")
}
