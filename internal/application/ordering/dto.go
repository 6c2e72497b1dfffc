package ordering

import (
	"time"

	"github.com/elir12131/agroflow/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest represents a request to add a product to a cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"omitempty,min=1"`
}

// CartLineResponse represents one cart line in API responses
type CartLineResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CartResponse represents a customer's cart in API responses
type CartResponse struct {
	CustomerID     uuid.UUID          `json:"customer_id"`
	Lines          []CartLineResponse `json:"lines"`
	TotalQuantity  int                `json:"total_quantity"`
	EstimatedTotal decimal.Decimal    `json:"estimated_total"`
}

// ToCartResponse converts a domain cart to a response DTO
func ToCartResponse(cart *ordering.Cart) *CartResponse {
	lines := cart.Lines()
	resp := &CartResponse{
		CustomerID:     cart.CustomerID,
		Lines:          make([]CartLineResponse, len(lines)),
		TotalQuantity:  cart.TotalQuantity(),
		EstimatedTotal: cart.EstimatedTotal(),
	}
	for i, line := range lines {
		resp.Lines[i] = CartLineResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal(),
		}
	}
	return resp
}

// FulfillmentLineRequest is the vendor's decision for one order line:
// a price quote, or out_of_stock
type FulfillmentLineRequest struct {
	ProductID  uuid.UUID `json:"product_id" binding:"required"`
	OutOfStock bool      `json:"out_of_stock"`
	Price      string    `json:"price"`
}

// FulfillOrderRequest represents a request to fulfill an order
type FulfillOrderRequest struct {
	Lines []FulfillmentLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// OrderListFilter represents filter options for order listings
type OrderListFilter struct {
	Customer string `form:"customer"`
	Status   string `form:"status" binding:"omitempty,oneof=PENDING_VENDOR COMPLETED"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	OutOfStock  bool            `json:"out_of_stock"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	CustomerID   uuid.UUID           `json:"customer_id"`
	CustomerName string              `json:"customer_name,omitempty"`
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	PlacedAt     time.Time           `json:"placed_at"`
	Items        []OrderItemResponse `json:"items"`
}

// ToOrderResponse converts a domain order to a response DTO containing
// the given items
func ToOrderResponse(order *ordering.Order, items []ordering.OrderItem) *OrderResponse {
	resp := &OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Status:     string(order.Status),
		Total:      order.Total,
		PlacedAt:   order.PlacedAt,
		Items:      make([]OrderItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			OutOfStock:  item.OutOfStock,
		}
	}
	return resp
}
