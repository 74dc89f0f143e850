package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used across the domain. Every mutation path reports failures
// through one of these kinds; the HTTP layer maps them to status codes.
const (
	CodeEmptyName         = "EMPTY_NAME"
	CodeDuplicateName     = "DUPLICATE_NAME"
	CodeCategoryMissing   = "CATEGORY_MISSING"
	CodeCategoryInUse     = "CATEGORY_IN_USE"
	CodeInvalidQuantity   = "INVALID_QUANTITY"
	CodeInvalidPrice      = "INVALID_PRICE"
	CodeInvalidDiscount   = "INVALID_DISCOUNT"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidPeriod     = "INVALID_PERIOD"
	CodeItemNotFound      = "ITEM_NOT_FOUND"
	CodeNotFound          = "NOT_FOUND"
	CodePersistence       = "PERSISTENCE_ERROR"
)

// Common domain errors
var (
	ErrNotFound          = NewDomainError(CodeNotFound, "Resource not found")
	ErrItemNotFound      = NewDomainError(CodeItemNotFound, "Item not found.")
	ErrInsufficientStock = NewDomainError(CodeInsufficientStock, "Cannot sell more than available stock.")
)

// NewPersistenceError wraps a storage failure as a domain error so callers
// receive a typed failure value rather than a raw driver error.
func NewPersistenceError(err error) *DomainError {
	return NewDomainError(CodePersistence, "Storage operation failed: "+err.Error())
}

// ErrorCode returns the domain error code carried by err, or an empty string
// when err is not a DomainError.
func ErrorCode(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}
