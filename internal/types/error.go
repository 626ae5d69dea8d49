package types

import (
	"errors"
	"net/http"

	"github.com/kimberlabs/staking-ledger/internal/ledger"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	NotFound             ErrorCode = "NOT_FOUND"
	Unauthorized         ErrorCode = "UNAUTHORIZED"
	Forbidden            ErrorCode = "FORBIDDEN"
	Conflict             ErrorCode = "CONFLICT"
	InsufficientFunds    ErrorCode = "INSUFFICIENT_FUNDS"
)

func (c ErrorCode) String() string {
	return string(c)
}

type Error struct {
	StatusCode int
	ErrorCode  ErrorCode
	Err        error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        errors.New(msg),
	}
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}

func NewValidationFailedError(err error) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		ErrorCode:  ValidationError,
		Err:        err,
	}
}

// NewLedgerError exposes a rejected ledger operation with its stable code.
// Anything that is not a ledger rejection is an internal error.
func NewLedgerError(err error) *Error {
	var ledgerErr *ledger.Error
	if !errors.As(err, &ledgerErr) {
		return NewInternalServiceError(err)
	}

	status := http.StatusBadRequest
	switch ledgerErr.Kind {
	case ledger.KindUnauthorized:
		status = http.StatusForbidden
	case ledger.KindState:
		status = http.StatusConflict
	case ledger.KindArithmetic:
		status = http.StatusUnprocessableEntity
	}

	return &Error{
		StatusCode: status,
		ErrorCode:  ErrorCode(ledgerErr.Code),
		Err:        err,
	}
}
