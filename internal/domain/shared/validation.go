package shared

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Validation rules shared by every mutation path. Each predicate is pure:
// it inspects the proposed value and returns a typed DomainError, leaving
// the caller to decide whether state is touched (validate-then-commit).

// ValidateName trims the proposed name and fails with EMPTY_NAME when
// nothing remains. The trimmed value is returned for storage.
func ValidateName(subject, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewDomainError(CodeEmptyName, subject+" name is required.")
	}
	return trimmed, nil
}

// ValidateQuantity fails with INVALID_QUANTITY unless n is a non-negative
// integer count.
func ValidateQuantity(n int64) error {
	if n < 0 {
		return NewDomainError(CodeInvalidQuantity, "Quantity must be a whole number >= 0.")
	}
	return nil
}

// ValidateSaleQuantity fails with INVALID_QUANTITY unless n is at least 1.
func ValidateSaleQuantity(n int64) error {
	if n < 1 {
		return NewDomainError(CodeInvalidQuantity, "Quantity must be at least 1.")
	}
	return nil
}

// ValidateAmount fails with INVALID_PRICE when the amount is negative.
func ValidateAmount(v decimal.Decimal) error {
	if v.IsNegative() {
		return NewDomainError(CodeInvalidPrice, "Price must be >= 0.")
	}
	return nil
}

// ValidateDiscount fails with INVALID_DISCOUNT unless
// 0 <= discount <= subtotal. A discount equal to the full subtotal (a
// zero-total sale) is accepted.
func ValidateDiscount(discount, subtotal decimal.Decimal) error {
	if discount.IsNegative() {
		return NewDomainError(CodeInvalidDiscount, "Discount cannot be negative.")
	}
	if discount.GreaterThan(subtotal) {
		return NewDomainError(CodeInvalidDiscount, "Discount cannot exceed subtotal.")
	}
	return nil
}
