package store

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// ErrCodeInvalidInput indicates a field value that cannot be stored.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeNotFound indicates no record has the requested id.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeDuplicateID indicates an Add collided with an existing id
	// while unique ids are enforced.
	ErrCodeDuplicateID ErrorCode = "DUPLICATE_ID"

	// ErrCodeMalformed indicates the stored document could not be decoded.
	ErrCodeMalformed ErrorCode = "MALFORMED_RECORD"

	// ErrCodePersist indicates the backend could not be read or written.
	ErrCodePersist ErrorCode = "PERSIST_FAILED"

	// ErrCodeNotReady indicates an operation before Load.
	ErrCodeNotReady ErrorCode = "NOT_READY"
)

// Error is the single error type returned by Store operations.
type Error struct {
	Code    ErrorCode
	Message string

	// Field names the offending input field for INVALID_INPUT.
	Field string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the ErrorCode of err, or "" if err is not a store error.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsNotFound returns true if err is a NOT_FOUND store error.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// IsInvalidInput returns true if err is an INVALID_INPUT store error.
func IsInvalidInput(err error) bool {
	return CodeOf(err) == ErrCodeInvalidInput
}

// IsDuplicateID returns true if err is a DUPLICATE_ID store error.
func IsDuplicateID(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateID
}

// IsMalformed returns true if err is a MALFORMED_RECORD store error.
func IsMalformed(err error) bool {
	return CodeOf(err) == ErrCodeMalformed
}

// IsPersistError returns true if err is a PERSIST_FAILED store error.
func IsPersistError(err error) bool {
	return CodeOf(err) == ErrCodePersist
}

// NewInvalidInput creates an INVALID_INPUT error for field.
func NewInvalidInput(field, message string) *Error {
	return &Error{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewNotFound creates a NOT_FOUND error for id.
func NewNotFound(id int64) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("no employee with ID %d", id),
	}
}

func newDuplicateID(id int64) *Error {
	return &Error{
		Code:    ErrCodeDuplicateID,
		Message: fmt.Sprintf("an employee with ID %d already exists", id),
	}
}

func newMalformed(message string, err error) *Error {
	return &Error{Code: ErrCodeMalformed, Message: message, Err: err}
}

func newPersistError(message string, err error) *Error {
	return &Error{Code: ErrCodePersist, Message: message, Err: err}
}

func newNotReady(op string) *Error {
	return &Error{
		Code:    ErrCodeNotReady,
		Message: fmt.Sprintf("%s before roster was loaded", op),
	}
}
