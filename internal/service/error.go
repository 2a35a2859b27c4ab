package service

import (
	"errors"

	"github.com/mbibank/ledger/internal/constants"
	"github.com/mbibank/ledger/internal/repository"
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// storageError converts a repository failure into a coded service error.
// The missing-accounts-file wording differs between the load path and the
// balance-check path, so callers pass the code to use for that case.
func storageError(err error, missingFileCode string) error {
	var formatErr *repository.FormatError

	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return NewServiceError(constants.ErrCodeAccountNotFound, err)
	case errors.Is(err, repository.ErrNoAccountsFile):
		return NewServiceError(missingFileCode, err)
	case errors.As(err, &formatErr):
		return NewServiceError(constants.ErrCodeBadRecord, err)
	default:
		return NewServiceError(constants.ErrCodeStorage, err)
	}
}
