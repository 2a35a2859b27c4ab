package repository

import (
	"errors"
	"fmt"
)

var ErrAccountNotFound = errors.New("ACCOUNT_NOT_FOUND")
var ErrNoAccountsFile = errors.New("NO_ACCOUNTS_FILE")

// FormatError reports a table row or header that is missing an expected
// column, which means the store is corrupted or written by an
// incompatible version.
type FormatError struct {
	Column string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid table format: missing column %q", e.Column)
}

func columnIndex(header []string, want []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}

	for _, col := range want {
		if _, ok := idx[col]; !ok {
			return nil, &FormatError{Column: col}
		}
	}

	return idx, nil
}
