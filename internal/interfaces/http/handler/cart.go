package handler

import (
	orderingapp "github.com/elir12131/agroflow/internal/application/ordering"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler handles cart API endpoints. Carts are keyed by customer.
type CartHandler struct {
	BaseHandler
	cartService *orderingapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *orderingapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/carts/:customerID")
	{
		carts.GET("", h.Get)
		carts.POST("/items", h.AddItem)
		carts.DELETE("/items/:productID", h.RemoveOne)
		carts.DELETE("", h.Clear)
		carts.POST("/checkout", h.Checkout)
	}
}

// Get returns the customer's current cart
func (h *CartHandler) Get(c *gin.Context) {
	customerID, err := parseCustomerIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	result, err := h.cartService.GetCart(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AddItem adds a product to the customer's cart
func (h *CartHandler) AddItem(c *gin.Context) {
	customerID, err := parseCustomerIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req orderingapp.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.cartService.AddItem(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveOne decrements a product's cart quantity by one
func (h *CartHandler) RemoveOne(c *gin.Context) {
	customerID, err := parseCustomerIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.cartService.RemoveOne(c.Request.Context(), customerID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Clear empties the customer's cart
func (h *CartHandler) Clear(c *gin.Context) {
	customerID, err := parseCustomerIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	h.cartService.Clear(c.Request.Context(), customerID)
	h.NoContent(c)
}

// Checkout turns the cart into a pending order
func (h *CartHandler) Checkout(c *gin.Context) {
	customerID, err := parseCustomerIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	result, err := h.cartService.Checkout(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
