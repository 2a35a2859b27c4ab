package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	accountNumberRegex = `^\d{10}$`
)

const (
	AccountNumberTag = "acct"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	AccountNumberTag: ValidateAccountNumber,
}

func ValidateAccountNumber(fl validator.FieldLevel) bool {
	number := fl.Field().String()
	return regexp.MustCompile(accountNumberRegex).MatchString(number)
}
