package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/elir12131/agroflow/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandler_Success(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.Success(c, gin.H{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestBaseHandler_HandleError_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"not in cart", shared.NewDomainError("NOT_IN_CART", "Product is not in the cart"), http.StatusNotFound, dto.ErrCodeNotFound},
		{"order not pending", shared.NewDomainError("ORDER_NOT_PENDING", "Order has already been fulfilled"), http.StatusConflict, dto.ErrCodeOrderNotPending},
		{"customer has orders", shared.NewDomainError("CUSTOMER_HAS_ORDERS", "Customer has orders"), http.StatusConflict, dto.ErrCodeCustomerHasOrders},
		{"empty cart", shared.NewDomainError("EMPTY_CART", "Cannot checkout an empty cart"), http.StatusUnprocessableEntity, dto.ErrCodeEmptyCart},
		{"invalid price", shared.NewDomainError("INVALID_PRICE", "Price must be a number"), http.StatusBadRequest, dto.ErrCodeValidation},
		{"store error", shared.ErrStore, http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	h := &BaseHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestBaseHandler_BindingError_ValidationFailureListsFields(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)

	h.BindingError(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Name")
}

func TestBaseHandler_BindingError_MalformedBody(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.BindingError(c, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	assert.Equal(t, "Invalid request body", resp.Error.Message)
}

func TestBaseHandler_HandleError_UnknownErrorIsInternal(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()

	h.HandleError(c, errors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	assert.Equal(t, "An unexpected error occurred", resp.Error.Message)
}

func TestBaseHandler_HandleError_IncludesRequestID(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext()
	c.Set("request_id", "req-42")

	h.HandleError(c, shared.ErrNotFound)

	resp := decodeResponse(t, w)
	assert.Equal(t, "req-42", resp.RequestID)
}
