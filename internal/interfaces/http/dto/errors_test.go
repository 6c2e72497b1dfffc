package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"validation", ErrCodeValidation, http.StatusBadRequest},
		{"conflict", ErrCodeConflict, http.StatusConflict},
		{"order not pending", ErrCodeOrderNotPending, http.StatusConflict},
		{"customer has orders", ErrCodeCustomerHasOrders, http.StatusConflict},
		{"empty cart", ErrCodeEmptyCart, http.StatusUnprocessableEntity},
		{"internal", ErrCodeInternal, http.StatusInternalServerError},
		{"unknown code defaults to 500", "ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"not found", "NOT_FOUND", ErrCodeNotFound},
		{"not in cart maps to not found", "NOT_IN_CART", ErrCodeNotFound},
		{"invalid price maps to validation", "INVALID_PRICE", ErrCodeValidation},
		{"order not pending", "ORDER_NOT_PENDING", ErrCodeOrderNotPending},
		{"store error maps to internal", "STORE_ERROR", ErrCodeInternal},
		{"already normalized passes through", ErrCodeConflict, ErrCodeConflict},
		{"unknown passes through", "SOMETHING_CUSTOM", "SOMETHING_CUSTOM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.code))
		})
	}
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Resource not found", "req-123")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "req-123", resp.RequestID)
}
