package ledger

// ErrorKind groups ledger rejections so outer layers can map them to a status.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION"
	KindState        ErrorKind = "STATE"
	KindUnauthorized ErrorKind = "UNAUTHORIZED"
	KindArithmetic   ErrorKind = "ARITHMETIC"
)

// Error is a rejected ledger operation. Codes are stable and part of the API.
type Error struct {
	Code string
	Kind ErrorKind
}

func (e *Error) Error() string {
	return e.Code
}

func newError(kind ErrorKind, code string) *Error {
	return &Error{Code: code, Kind: kind}
}

var (
	ErrInvalidZeroAmount        = newError(KindValidation, "INVALID_ZERO_AMOUNT")
	ErrInvalidAmount            = newError(KindValidation, "INVALID_AMOUNT")
	ErrInvalidRecipient         = newError(KindValidation, "INVALID_RECIPIENT")
	ErrInvalidOwner             = newError(KindValidation, "INVALID_OWNER")
	ErrInvalidExpiration        = newError(KindValidation, "INVALID_EXPIRATION")
	ErrUnknownAsset             = newError(KindValidation, "UNKNOWN_ASSET")
	ErrInvalidBalanceOnCooldown = newError(KindState, "INVALID_BALANCE_ON_COOLDOWN")
	ErrInsufficientCooldown     = newError(KindState, "INSUFFICIENT_COOLDOWN")
	ErrUnstakeWindowFinished    = newError(KindState, "UNSTAKE_WINDOW_FINISHED")
	ErrInsufficientBalance      = newError(KindState, "INSUFFICIENT_BALANCE")
	ErrInsufficientAllowance    = newError(KindState, "INSUFFICIENT_ALLOWANCE")
	ErrAlreadyInitialized       = newError(KindState, "ALREADY_INITIALIZED")
	ErrNotInitialized           = newError(KindState, "NOT_INITIALIZED")
	ErrInvalidSignature         = newError(KindUnauthorized, "INVALID_SIGNATURE")
	ErrOnlyEmissionManager      = newError(KindUnauthorized, "ONLY_EMISSION_MANAGER")
	ErrOverflow                 = newError(KindArithmetic, "ARITHMETIC_OVERFLOW")
	ErrUnderflow                = newError(KindArithmetic, "ARITHMETIC_UNDERFLOW")
)
