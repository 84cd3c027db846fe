package errors

import (
	"fmt"
	"net/http"

	"haulquote/internal/errors"
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

// LocationNotFoundError is returned when an origin or destination cannot be
// resolved against the geography catalog. It is a caller-input problem and
// is never retried.
type LocationNotFoundError struct {
	RegionCode string
	Location   string
}

func (e *LocationNotFoundError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("region %q not found in catalog", e.RegionCode)
	}

	return fmt.Sprintf("location %q not found in region %q", e.Location, e.RegionCode)
}

// HTTPCode returns the HTTP status code
func (e *LocationNotFoundError) HTTPCode() int {
	return http.StatusNotFound
}

// ErrorCode returns the business error code
func (e *LocationNotFoundError) ErrorCode() string {
	if e.Location == "" {
		return "REGION_NOT_FOUND"
	}

	return "LOCATION_NOT_FOUND"
}

// Message returns the user-friendly error message
func (e *LocationNotFoundError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *LocationNotFoundError) Details() string {
	return ""
}

// NewLocationNotFound builds the single domain failure the quote engine can
// signal.
func NewLocationNotFound(regionCode, location string) *LocationNotFoundError {
	return &LocationNotFoundError{RegionCode: regionCode, Location: location}
}

// Predefined error types
var (
	ErrInvalidQuoteOptions = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUOTE_OPTIONS",
		"quote options are invalid",
		"",
	)

	ErrCatalogInvalid = NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_INVALID",
		"geography catalog failed validation",
		"",
	)
)
