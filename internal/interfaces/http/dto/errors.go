package dto

import (
	"net/http"

	"github.com/stocktrack/backend/internal/domain/shared"
)

// Transport-level error codes, used where no domain code applies
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Validation failures are 400, missing resources 404, name collisions and
// in-use conflicts 409, and business rule rejections 422.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,

	shared.CodeEmptyName:       http.StatusBadRequest,
	shared.CodeInvalidQuantity: http.StatusBadRequest,
	shared.CodeInvalidPrice:    http.StatusBadRequest,
	shared.CodeCategoryMissing: http.StatusBadRequest,
	shared.CodeInvalidPeriod:   http.StatusBadRequest,

	shared.CodeNotFound:     http.StatusNotFound,
	shared.CodeItemNotFound: http.StatusNotFound,

	shared.CodeDuplicateName: http.StatusConflict,
	shared.CodeCategoryInUse: http.StatusConflict,

	shared.CodeInvalidDiscount:   http.StatusUnprocessableEntity,
	shared.CodeInsufficientStock: http.StatusUnprocessableEntity,

	shared.CodePersistence: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
