package errors

import (
	"net/http"

	"notifier/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// Skipped is deliberately NOT in this list: a channel disabled by account
// settings is a non-error outcome carried on dispatch reports, and must stay
// distinguishable from every error below.
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrEmailNotFound = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_FOUND",
		"account has no email address",
		"",
	)

	// Device-token-related errors
	ErrTokensNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKENS_NOT_FOUND",
		"no active device tokens for account",
		"",
	)

	ErrTokenRegistrationConflict = NewBaseError(
		http.StatusConflict,
		"TOKEN_REGISTRATION_CONFLICT",
		"device token registration failed after repeated conflicts",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transport-related errors
	ErrConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_ERROR",
		"delivery transport is not configured",
		"",
	)

	ErrTransientDelivery = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSIENT_DELIVERY_FAILED",
		"delivery transport temporarily unavailable",
		"",
	)

	// Store-related errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"backing store rejected the write",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// DocumentStoreError represents a document store execution error,
// implementing the AppError interface
type DocumentStoreError struct {
	err     error
	details string
}

// NewDocumentStoreError creates a store-related error
func NewDocumentStoreError(err error, details string) AppError {
	return &DocumentStoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DocumentStoreError) Error() string {
	return errors.Wrap(e.err, "document store operation failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DocumentStoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DocumentStoreError) ErrorCode() string {
	return "DOCUMENT_STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *DocumentStoreError) Message() string {
	return "document store operation failed"
}

// Details returns detailed error information
func (e *DocumentStoreError) Details() string {
	return e.details
}
