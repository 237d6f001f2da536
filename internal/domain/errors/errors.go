// Package errors defines the typed error taxonomy for the service layer.
// Every usecase operation reports failures as one of four mutually
// exclusive kinds: validation, not-found, business-rule violation, or
// unknown. The HTTP delivery maps these onto status codes.
package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
)

// Kind identifies which branch of the error taxonomy an AppError belongs to.
type Kind string

const (
	KindValidation            Kind = "VALIDATION_ERROR"
	KindNotFound              Kind = "NOT_FOUND"
	KindBusinessRuleViolation Kind = "BUSINESS_RULE_VIOLATION"
	KindUnknown               Kind = "UNKNOWN_ERROR"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int   // HTTP status code
	ErrorCode() Kind // Business error kind
	Message() string // User-friendly error message
	Details() string // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode int
	kind     Kind
	message  string
	details  string
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

// ErrorCode returns the business error kind
func (e *BaseError) ErrorCode() Kind {
	return e.kind
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// NewValidationError reports malformed input, detected before any
// collaborator call. The caller can recover by correcting the input.
func NewValidationError(message string) *BaseError {
	return &BaseError{
		httpCode: http.StatusBadRequest,
		kind:     KindValidation,
		message:  message,
	}
}

// NewNotFound reports that a referenced entity (User, Product, Purchase)
// does not exist. It carries the entity name and the missing id.
func NewNotFound(entity, id string) *BaseError {
	return &BaseError{
		httpCode: http.StatusNotFound,
		kind:     KindNotFound,
		message:  fmt.Sprintf("%s with id %s not found", entity, id),
	}
}

// NewBusinessRuleViolation reports well-formed input that violates a domain
// rule, such as a price mismatch or an illegal status transition.
func NewBusinessRuleViolation(message string) *BaseError {
	return &BaseError{
		httpCode: http.StatusBadRequest,
		kind:     KindBusinessRuleViolation,
		message:  message,
	}
}

// NewUnknownError reports an unexpected collaborator failure. The original
// message is preserved for diagnostics; the workflow never retries it.
func NewUnknownError(err error) *BaseError {
	return &BaseError{
		httpCode: http.StatusInternalServerError,
		kind:     KindUnknown,
		message:  err.Error(),
		details:  fmt.Sprintf("%+v", err),
	}
}

// KindOf extracts the taxonomy kind from err, unwrapping as needed.
// It returns KindUnknown for errors that carry no AppError.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return KindUnknown
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	return KindOf(err) == KindValidation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsBusinessRuleViolation reports whether err is a business rule violation.
func IsBusinessRuleViolation(err error) bool {
	return KindOf(err) == KindBusinessRuleViolation
}
