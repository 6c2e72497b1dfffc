package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeEmptyCart is used when checking out a cart with no lines
	ErrCodeEmptyCart = "ERR_EMPTY_CART"
	// ErrCodeOrderNotPending is used when fulfilling an order that is not pending
	ErrCodeOrderNotPending = "ERR_ORDER_NOT_PENDING"
	// ErrCodeCustomerHasOrders is used when deleting a customer with order history
	ErrCodeCustomerHasOrders = "ERR_CUSTOMER_HAS_ORDERS"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeEmptyCart:         http.StatusUnprocessableEntity,
	ErrCodeOrderNotPending:   http.StatusConflict,
	ErrCodeCustomerHasOrders: http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to standardized API codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"ALREADY_EXISTS": ErrCodeAlreadyExists,
	"DUPLICATE_NAME": ErrCodeAlreadyExists,
	"CONFLICT":       ErrCodeConflict,
	"INVALID_STATE":  ErrCodeInvalidState,
	"INVALID_INPUT":  ErrCodeInvalidInput,
	"STORE_ERROR":    ErrCodeInternal,

	"INVALID_NAME":     ErrCodeValidation,
	"INVALID_PRICE":    ErrCodeValidation,
	"INVALID_QUANTITY": ErrCodeValidation,
	"INVALID_PERIOD":   ErrCodeValidation,
	"INVALID_KEY":      ErrCodeValidation,
	"INVALID_CUSTOMER": ErrCodeValidation,
	"EMPTY_ORDER":      ErrCodeValidation,
	"MISSING_DECISION": ErrCodeValidation,

	"NOT_IN_CART":        ErrCodeNotFound,
	"UNKNOWN_ORDER_LINE": ErrCodeNotFound,

	"EMPTY_CART":          ErrCodeEmptyCart,
	"ORDER_NOT_PENDING":   ErrCodeOrderNotPending,
	"CUSTOMER_HAS_ORDERS": ErrCodeCustomerHasOrders,
}

// NormalizeErrorCode converts a domain error code to the standardized
// API format. Codes already in the API format pass through unchanged.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
