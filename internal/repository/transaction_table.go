package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mbibank/ledger/internal/config"
	"github.com/mbibank/ledger/internal/model"
)

const (
	colAccount   = "Account"
	colType      = "Type"
	colAmount    = "Amount"
	colTxBalance = "Balance"
	colTimestamp = "Timestamp"
)

// timeLayout is the wall-clock rendering used in the transaction table.
const timeLayout = "2006-01-02 15:04:05.000000"

var transactionColumns = []string{colAccount, colType, colAmount, colTxBalance, colTimestamp}

type TransactionRepository interface {
	Append(ctx context.Context, tx *model.Transaction) error
	ListByAccount(ctx context.Context, number string) ([]model.Transaction, error)
}

type Transaction struct {
	path string
}

func NewTransactionRepository(cfg *config.Config) TransactionRepository {
	return &Transaction{path: filepath.Join(cfg.Ledger.Dir, cfg.Ledger.TransactionsFile)}
}

// Append opens the table in append mode, writes the header only when the
// file is first created, then writes exactly one row.
func (t *Transaction) Append(ctx context.Context, tx *model.Transaction) error {
	_, statErr := os.Stat(t.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(transactionColumns); err != nil {
			return err
		}
	}

	row := []string{
		tx.AccountNumber,
		string(tx.Type),
		formatAmount(tx.Amount),
		formatAmount(tx.Balance),
		tx.Timestamp.Format(timeLayout),
	}
	if err := w.Write(row); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

// ListByAccount scans the whole table and keeps rows for the given account
// in file order. A missing table file means no transactions, not an error.
func (t *Transaction) ListByAccount(ctx context.Context, number string) ([]model.Transaction, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	idx, err := columnIndex(header, transactionColumns)
	if err != nil {
		return nil, err
	}

	var transactions []model.Transaction
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if row[idx[colAccount]] != number {
			continue
		}

		amount, err := strconv.ParseFloat(row[idx[colAmount]], 64)
		if err != nil {
			return nil, &FormatError{Column: colAmount}
		}

		balance, err := strconv.ParseFloat(row[idx[colTxBalance]], 64)
		if err != nil {
			return nil, &FormatError{Column: colTxBalance}
		}

		ts, err := time.ParseInLocation(timeLayout, row[idx[colTimestamp]], time.Local)
		if err != nil {
			return nil, &FormatError{Column: colTimestamp}
		}

		transactions = append(transactions, model.Transaction{
			AccountNumber: row[idx[colAccount]],
			Type:          model.TransactionType(row[idx[colType]]),
			Amount:        amount,
			Balance:       balance,
			Timestamp:     ts,
		})
	}

	return transactions, nil
}
