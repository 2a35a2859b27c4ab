package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mbibank/ledger/internal/config"
	"github.com/mbibank/ledger/internal/model"
)

const (
	colName          = "Name"
	colAccountNumber = "Account Number"
	colBalance       = "Balance"
)

var accountColumns = []string{colName, colAccountNumber, colBalance}

type AccountRepository interface {
	ReadAll(ctx context.Context) ([]model.Account, error)
	Append(ctx context.Context, account model.Account) error
	UpdateBalance(ctx context.Context, number string, balance float64) error
	FindByNumber(ctx context.Context, number string) (*model.Account, error)
}

type Account struct {
	path string
}

func NewAccountRepository(cfg *config.Config) AccountRepository {
	return &Account{path: filepath.Join(cfg.Ledger.Dir, cfg.Ledger.AccountsFile)}
}

func (a *Account) ReadAll(ctx context.Context) ([]model.Account, error) {
	f, err := os.Open(a.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoAccountsFile
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

	idx, err := columnIndex(header, accountColumns)
	if err != nil {
		return nil, err
	}

	var accounts []model.Account
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		balance, err := strconv.ParseFloat(row[idx[colBalance]], 64)
		if err != nil {
			return nil, &FormatError{Column: colBalance}
		}

		accounts = append(accounts, model.Account{
			Name:    row[idx[colName]],
			Number:  row[idx[colAccountNumber]],
			Balance: balance,
		})
	}

	return accounts, nil
}

func (a *Account) Append(ctx context.Context, account model.Account) error {
	_, statErr := os.Stat(a.path)
	writeHeader := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(accountColumns); err != nil {
			return err
		}
	}

	row := []string{account.Name, account.Number, formatAmount(account.Balance)}
	if err := w.Write(row); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

// UpdateBalance reads the whole table, patches every row matching the
// account number and rewrites the file from scratch. If no row matches,
// nothing has been written and the file is left as it was. There is no
// locking: two concurrent rewrites race and the later one wins.
func (a *Account) UpdateBalance(ctx context.Context, number string, balance float64) error {
	accounts, err := a.ReadAll(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range accounts {
		if accounts[i].Number == number {
			accounts[i].Balance = balance
			found = true
		}
	}
	if !found {
		return ErrAccountNotFound
	}

	return a.writeAll(accounts)
}

func (a *Account) FindByNumber(ctx context.Context, number string) (*model.Account, error) {
	accounts, err := a.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Number == number {
			account := accounts[i]
			return &account, nil
		}
	}

	return nil, ErrAccountNotFound
}

func (a *Account) writeAll(accounts []model.Account) error {
	f, err := os.Create(a.path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(accountColumns); err != nil {
		f.Close()
		return err
	}

	for _, account := range accounts {
		row := []string{account.Name, account.Number, formatAmount(account.Balance)}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
