package ordering

import (
	"fmt"
	"time"

	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPendingVendor OrderStatus = "PENDING_VENDOR"
	OrderStatusCompleted     OrderStatus = "COMPLETED"
)

// IsValid checks if the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPendingVendor, OrderStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo checks if a transition to the target status is allowed.
// The only legal transition is PENDING_VENDOR to COMPLETED, which happens
// through fulfillment.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	return s == OrderStatusPendingVendor && target == OrderStatusCompleted
}

// OrderItem is a single line of an order. Price and OutOfStock are zero
// values until the vendor fulfills the order.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	OutOfStock  bool
}

// Subtotal returns the billable amount for this line.
// Out-of-stock lines never contribute to the order total.
func (i OrderItem) Subtotal() decimal.Decimal {
	if i.OutOfStock {
		return decimal.Zero
	}
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is the aggregate root for the fulfillment lifecycle
type Order struct {
	shared.BaseEntity
	CustomerID uuid.UUID
	Status     OrderStatus
	Total      decimal.Decimal
	PlacedAt   time.Time
	Items      []OrderItem
}

// NewOrder creates a pending order from checkout lines. Items carry
// quantities only; prices are decided by the vendor at fulfillment.
func NewOrder(customerID uuid.UUID, lines []CartLine) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}

	base := shared.NewBaseEntity()
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY",
				fmt.Sprintf("Quantity for product %q must be at least 1", l.ProductName))
		}
		items = append(items, OrderItem{
			ID:          uuid.New(),
			OrderID:     base.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
		})
	}

	return &Order{
		BaseEntity: base,
		CustomerID: customerID,
		Status:     OrderStatusPendingVendor,
		Total:      decimal.Zero,
		PlacedAt:   base.CreatedAt,
		Items:      items,
	}, nil
}

// IsPending reports whether the order is still waiting on the vendor
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPendingVendor
}

// BillableItems returns the order lines excluding out-of-stock ones
func (o *Order) BillableItems() []OrderItem {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		if !item.OutOfStock {
			items = append(items, item)
		}
	}
	return items
}
