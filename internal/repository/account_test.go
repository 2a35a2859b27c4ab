package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mbibank/ledger/internal/config"
	"github.com/mbibank/ledger/internal/model"
	"github.com/mbibank/ledger/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Ledger: config.Ledger{
			Dir:              t.TempDir(),
			AccountsFile:     "bank.csv",
			TransactionsFile: "transactions.csv",
			OpeningBalance:   500.0,
			HistoryLimit:     5,
		},
	}
}

func accountsPath(cfg *config.Config) string {
	return filepath.Join(cfg.Ledger.Dir, cfg.Ledger.AccountsFile)
}

func TestAccount_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("writes header only on first append", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		require.NoError(t, repo.Append(ctx, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 500}))
		require.NoError(t, repo.Append(ctx, model.Account{Name: "John Roe", Number: "1000000002", Balance: 500}))

		raw, err := os.ReadFile(accountsPath(cfg))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Name,Account Number,Balance", lines[0])
		assert.Equal(t, "Jane Doe,1000000001,500.00", lines[1])
		assert.Equal(t, "John Roe,1000000002,500.00", lines[2])
	})

	t.Run("appended rows round-trip through ReadAll", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		require.NoError(t, repo.Append(ctx, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 500}))

		accounts, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 500}, accounts[0])
	})
}

func TestAccount_ReadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("missing table file", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		_, err := repo.ReadAll(ctx)
		assert.ErrorIs(t, err, repository.ErrNoAccountsFile)
	})

	t.Run("header missing a column", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.WriteFile(accountsPath(cfg), []byte("Name,Account Number\nJane Doe,1000000001\n"), 0o644))

		repo := repository.NewAccountRepository(cfg)

		_, err := repo.ReadAll(ctx)

		var formatErr *repository.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "Balance", formatErr.Column)
	})

	t.Run("unparseable balance", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.WriteFile(accountsPath(cfg),
			[]byte("Name,Account Number,Balance\nJane Doe,1000000001,not-a-number\n"), 0o644))

		repo := repository.NewAccountRepository(cfg)

		_, err := repo.ReadAll(ctx)

		var formatErr *repository.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "Balance", formatErr.Column)
	})

	t.Run("columns may appear in any order", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.WriteFile(accountsPath(cfg),
			[]byte("Balance,Name,Account Number\n42.00,Jane Doe,1000000001\n"), 0o644))

		repo := repository.NewAccountRepository(cfg)

		accounts, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 42}, accounts[0])
	})
}

func TestAccount_FindByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("exact string match", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		require.NoError(t, repo.Append(ctx, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 500}))
		require.NoError(t, repo.Append(ctx, model.Account{Name: "John Roe", Number: "1000000002", Balance: 750}))

		account, err := repo.FindByNumber(ctx, "1000000002")
		require.NoError(t, err)
		assert.Equal(t, "John Roe", account.Name)
		assert.Equal(t, 750.0, account.Balance)
	})

	t.Run("no matching row", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		require.NoError(t, repo.Append(ctx, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 500}))

		_, err := repo.FindByNumber(ctx, "9999999999")
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})
}

func TestAccount_UpdateBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites the whole table patching one row", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		require.NoError(t, repo.Append(ctx, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 500}))
		require.NoError(t, repo.Append(ctx, model.Account{Name: "John Roe", Number: "1000000002", Balance: 750}))

		require.NoError(t, repo.UpdateBalance(ctx, "1000000001", 650))

		raw, err := os.ReadFile(accountsPath(cfg))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Name,Account Number,Balance", lines[0])
		assert.Equal(t, "Jane Doe,1000000001,650.00", lines[1])
		assert.Equal(t, "John Roe,1000000002,750.00", lines[2])
	})

	t.Run("unknown account leaves the file untouched", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		require.NoError(t, repo.Append(ctx, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 500}))

		before, err := os.ReadFile(accountsPath(cfg))
		require.NoError(t, err)

		err = repo.UpdateBalance(ctx, "9999999999", 100)
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)

		after, err := os.ReadFile(accountsPath(cfg))
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("missing table file", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		err := repo.UpdateBalance(ctx, "1000000001", 100)
		assert.ErrorIs(t, err, repository.ErrNoAccountsFile)
	})

	// There is no locking around the read-modify-rewrite cycle. Two writers
	// that both read the same starting balance race, and the later rewrite
	// wins: the first writer's update is silently lost. This documents that
	// behavior rather than asserting it away.
	t.Run("later rewrite wins over an earlier one", func(t *testing.T) {
		cfg := testConfig(t)
		repo := repository.NewAccountRepository(cfg)

		require.NoError(t, repo.Append(ctx, model.Account{Name: "Jane Doe", Number: "1000000001", Balance: 500}))

		require.NoError(t, repo.UpdateBalance(ctx, "1000000001", 600))
		require.NoError(t, repo.UpdateBalance(ctx, "1000000001", 700))

		account, err := repo.FindByNumber(ctx, "1000000001")
		require.NoError(t, err)
		assert.Equal(t, 700.0, account.Balance)
	})
}
