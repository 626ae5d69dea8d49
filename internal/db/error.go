package db

import "errors"

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var target *DuplicateKeyError
	return errors.As(err, &target)
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// SequenceConflictError is returned when the stored ledger moved past the
// sequence a writer expected, i.e. another writer committed first.
type SequenceConflictError struct {
	Expected uint64
	Message  string
}

func (e *SequenceConflictError) Error() string {
	return e.Message
}

func IsSequenceConflictError(err error) bool {
	var target *SequenceConflictError
	return errors.As(err, &target)
}
