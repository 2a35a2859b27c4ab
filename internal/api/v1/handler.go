package v1

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mbibank/ledger/internal/api/validator"
	"github.com/mbibank/ledger/internal/constants"
	"github.com/mbibank/ledger/internal/metrics"
	"github.com/mbibank/ledger/internal/service"
	"go.uber.org/zap"
)

const displayTimeLayout = "2006-01-02 15:04:05"

type Handler struct {
	logger     *zap.Logger
	accounts   service.AccountService
	queries    service.QueryService
	XValidator validator.IXValidator
	metrics    *metrics.Metrics
}

func NewHandler(logger *zap.Logger, accounts service.AccountService, queries service.QueryService,
	XValidator validator.IXValidator, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		accounts:   accounts,
		queries:    queries,
		XValidator: XValidator,
		metrics:    metrics,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	var request CreateAccountRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.CreateAccountCommand{Name: request.Name, Age: request.Age}

	resp, err := h.accounts.Create(c.UserContext(), cmd)
	if err != nil {
		h.recordError("create_account", err)
		return err
	}

	h.metrics.RecordAccountCreated()
	h.logger.Info("Account created successfully",
		zap.String("account", resp.AccountNumber))

	return c.Status(fiber.StatusCreated).JSON(CreateAccountResponse{
		AccountNumber:  resp.AccountNumber,
		OpeningBalance: resp.OpeningBalance,
		Message:        resp.Message,
	})
}

func (h *Handler) CheckBalance(c *fiber.Ctx) error {
	var request BalanceRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	resp, err := h.queries.CheckBalance(c.UserContext(), request.AccountNumber)
	if err != nil {
		h.recordError("check_balance", err)
		return err
	}

	return c.JSON(BalanceResponse{Name: resp.Name, Balance: resp.Balance, Message: resp.Message})
}

func (h *Handler) Deposit(c *fiber.Ctx) error {
	return h.mutate(c, "deposit", h.accounts.Deposit)
}

func (h *Handler) Withdraw(c *fiber.Ctx) error {
	return h.mutate(c, "withdraw", h.accounts.Withdraw)
}

func (h *Handler) Transactions(c *fiber.Ctx) error {
	var request TransactionsRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	resp, err := h.queries.History(c.UserContext(), request.AccountNumber)
	if err != nil {
		h.recordError("history", err)
		return err
	}

	transactions := make([]TransactionResponse, 0, len(resp.Entries))
	for _, entry := range resp.Entries {
		transactions = append(transactions, TransactionResponse{
			Type:      entry.Type,
			Amount:    entry.Amount,
			Balance:   entry.Balance,
			Timestamp: entry.Timestamp.Format(displayTimeLayout),
		})
	}

	return c.JSON(TransactionsResponse{Transactions: transactions, Message: resp.Message})
}

func (h *Handler) mutate(c *fiber.Ctx, operation string,
	fn func(ctx context.Context, cmd service.AmountCommand) (service.MutationResponse, error)) error {
	var request AmountRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.AmountCommand{AccountNumber: request.AccountNumber, Amount: request.Amount}

	resp, err := fn(c.UserContext(), cmd)
	if err != nil {
		h.recordError(operation, err)
		return err
	}

	h.metrics.RecordTransaction(operation)
	h.logger.Info("Ledger operation succeeded",
		zap.String("operation", operation),
		zap.String("account", resp.AccountNumber),
		zap.Float64("balance", resp.Balance))

	return c.JSON(MutationResponse{
		AccountNumber: resp.AccountNumber,
		Balance:       resp.Balance,
		Message:       resp.Message,
	})
}

func (h *Handler) recordError(operation string, err error) {
	code := constants.ErrCodeInternalError

	var serviceErr service.Error
	if errors.As(err, &serviceErr) {
		code = serviceErr.Code
	}

	h.metrics.RecordOperationError(operation, code)
	h.logger.Error("Ledger operation failed",
		zap.String("operation", operation),
		zap.String("code", code),
		zap.Error(err))
}
