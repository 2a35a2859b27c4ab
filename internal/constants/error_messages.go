package constants

const (
	ErrCodeEmptyName           = "EMPTY_NAME"
	ErrCodeUnderage            = "UNDERAGE"
	ErrCodeInvalidAmount       = "INVALID_AMOUNT"
	ErrCodeInsufficientFunds   = "INSUFFICIENT_FUNDS"
	ErrCodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	ErrCodeNoAccounts          = "NO_ACCOUNTS"
	ErrCodeAccountsFileMissing = "ACCOUNTS_FILE_MISSING"
	ErrCodeBadRecord           = "BAD_RECORD"
	ErrCodeStorage             = "STORAGE_ERROR"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)

const (
	ErrMsgEmptyName           = "Name cannot be empty"
	ErrMsgUnderage            = "Must be 18 or older to open an account"
	ErrMsgInvalidAmount       = "Amount must be positive"
	ErrMsgInsufficientFunds   = "Insufficient funds"
	ErrMsgAccountNotFound     = "Account not found"
	ErrMsgNoAccounts          = "No accounts exist. Please create an account first."
	ErrMsgAccountsFileMissing = "The accounts file does not exist."
	ErrMsgBadRecord           = "Invalid table format"
	ErrMsgStorage             = "The ledger could not be updated"
	ErrMsgInternalError       = "Internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
)

const MessageErrorFormat = "field %s is invalid"

var errorMessages = map[string]string{
	ErrCodeEmptyName:           ErrMsgEmptyName,
	ErrCodeUnderage:            ErrMsgUnderage,
	ErrCodeInvalidAmount:       ErrMsgInvalidAmount,
	ErrCodeInsufficientFunds:   ErrMsgInsufficientFunds,
	ErrCodeAccountNotFound:     ErrMsgAccountNotFound,
	ErrCodeNoAccounts:          ErrMsgNoAccounts,
	ErrCodeAccountsFileMissing: ErrMsgAccountsFileMissing,
	ErrCodeBadRecord:           ErrMsgBadRecord,
	ErrCodeStorage:             ErrMsgStorage,
	ErrCodeInternalError:       ErrMsgInternalError,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeEmptyName, ErrCodeUnderage, ErrCodeInvalidAmount, ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeAccountNotFound, ErrCodeNoAccounts, ErrCodeAccountsFileMissing:
		return 404
	case ErrCodeInsufficientFunds:
		return 409
	case ErrCodeBadRecord, ErrCodeStorage, ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
