package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller does not own the requested resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates a missing or invalid identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates that the stored record changed between read and write.
var ErrConflict = errors.New("resource was modified concurrently")

// AppError wraps a storage or infrastructure failure with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Code classifies a business-rule failure.
type Code string

const (
	CodeInvalidStatus             Code = "INVALID_STATUS"
	CodeIllegalTransition         Code = "ILLEGAL_TRANSITION"
	CodeInvalidEvent              Code = "INVALID_EVENT"
	CodeEventNotAllowedFromStatus Code = "EVENT_NOT_ALLOWED_FROM_STATUS"
	CodeInvalidPaymentDetails     Code = "INVALID_PAYMENT_DETAILS"
	CodeInvalidDateRange          Code = "INVALID_DATE_RANGE"
	CodeInvalidTaxYear            Code = "INVALID_TAX_YEAR"
	CodeInvalidQuarter            Code = "INVALID_QUARTER"
)

// DomainError is the structured failure returned by the invoice lifecycle and
// the VAT period helpers. Fields is only set for field-level validation.
type DomainError struct {
	Code    Code              `json:"code"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Is matches any DomainError carrying the same code, so the package-level
// sentinels below can be used with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Unwrap lets callers treat every domain failure as ErrValidation.
func (e *DomainError) Unwrap() error {
	return ErrValidation
}

// NewDomainError builds a DomainError with a formatted message.
func NewDomainError(code Code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidStatus             = &DomainError{Code: CodeInvalidStatus}
	ErrIllegalTransition         = &DomainError{Code: CodeIllegalTransition}
	ErrInvalidEvent              = &DomainError{Code: CodeInvalidEvent}
	ErrEventNotAllowedFromStatus = &DomainError{Code: CodeEventNotAllowedFromStatus}
	ErrInvalidPaymentDetails     = &DomainError{Code: CodeInvalidPaymentDetails}
	ErrInvalidDateRange          = &DomainError{Code: CodeInvalidDateRange}
	ErrInvalidTaxYear            = &DomainError{Code: CodeInvalidTaxYear}
	ErrInvalidQuarter            = &DomainError{Code: CodeInvalidQuarter}
)
