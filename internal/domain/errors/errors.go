// Package errors defines the application error taxonomy of the
// consistency engine. Validation and invariant failures are detected
// locally, before any store call; saga failures are typed separately in
// saga.go because they carry the committed side effects of the step
// that failed.
package errors

import (
	"net/http"

	"hokhau/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business error code, so copies produced by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WithDetails returns a copy of the error with detailed information attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error values
var (
	// Validation failures, surfaced before any network call.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrPolicyViolation = NewBaseError(
		http.StatusBadRequest,
		"POLICY_VIOLATION",
		"identity document does not satisfy the age policy",
		"",
	)

	// Invariant conflicts, detected against locally-held roster state.
	ErrHeadAlreadyAssigned = NewBaseError(
		http.StatusConflict,
		"HEAD_ALREADY_ASSIGNED",
		"the household already has a head",
		"",
	)

	ErrNoSuccessorAvailable = NewBaseError(
		http.StatusConflict,
		"NO_SUCCESSOR_AVAILABLE",
		"headship cannot be abandoned without a successor",
		"",
	)

	// Lookup failures.
	ErrHouseholdNotFound = NewBaseError(
		http.StatusNotFound,
		"HOUSEHOLD_NOT_FOUND",
		"household not found",
		"",
	)

	ErrCitizenNotFound = NewBaseError(
		http.StatusNotFound,
		"CITIZEN_NOT_FOUND",
		"citizen not found",
		"",
	)

	// Two-phase transfer gate.
	ErrProposalNotFound = NewBaseError(
		http.StatusNotFound,
		"PROPOSAL_NOT_FOUND",
		"transfer proposal not found",
		"",
	)

	ErrProposalExpired = NewBaseError(
		http.StatusGone,
		"PROPOSAL_EXPIRED",
		"transfer proposal has expired; propose the transfer again",
		"",
	)
)

// DatabaseExecuteError wraps unexpected store failures.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying store error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
