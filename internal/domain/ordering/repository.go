package ordering

import (
	"context"

	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderFilter narrows order listings
type OrderFilter struct {
	shared.Filter
	CustomerName string
	Status       OrderStatus
}

// DefaultOrderFilter returns an order filter with default pagination
func DefaultOrderFilter() OrderFilter {
	return OrderFilter{Filter: shared.DefaultFilter()}
}

// OrderRepository defines persistence operations for orders.
// UpdateFulfillment must persist the item updates and the order status
// and total as a single transaction.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	UpdateFulfillment(ctx context.Context, order *Order) error
	CountByStatus(ctx context.Context, status OrderStatus) (int64, error)
	ExistsForCustomer(ctx context.Context, customerID uuid.UUID) (bool, error)
}
