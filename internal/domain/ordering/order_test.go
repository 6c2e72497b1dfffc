package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestOrder(t *testing.T, quantities ...int) *Order {
	lines := make([]CartLine, 0, len(quantities))
	for i, qty := range quantities {
		lines = append(lines, CartLine{
			ProductID:   uuid.New(),
			ProductName: "Product " + string(rune('A'+i)),
			UnitPrice:   decimal.RequireFromString("1.00"),
			Quantity:    qty,
		})
	}
	order, err := NewOrder(uuid.New(), lines)
	require.NoError(t, err)
	return order
}

func priceDecision(price string) FulfillmentDecision {
	return FulfillmentDecision{Price: price}
}

func oosDecision() FulfillmentDecision {
	return FulfillmentDecision{OutOfStock: true}
}

// ============================================
// OrderStatus Tests
// ============================================

func TestOrderStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  OrderStatus
		isValid bool
	}{
		{OrderStatusPendingVendor, true},
		{OrderStatusCompleted, true},
		{OrderStatus("SHIPPED"), false},
		{OrderStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     OrderStatus
		to       OrderStatus
		canTrans bool
	}{
		{OrderStatusPendingVendor, OrderStatusCompleted, true},
		{OrderStatusPendingVendor, OrderStatusPendingVendor, false},
		// COMPLETED is terminal
		{OrderStatusCompleted, OrderStatusPendingVendor, false},
		{OrderStatusCompleted, OrderStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

// ============================================
// NewOrder Tests
// ============================================

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with quantity-only items", func(t *testing.T) {
		order := createTestOrder(t, 2, 5)

		assert.Equal(t, OrderStatusPendingVendor, order.Status)
		assert.True(t, order.Total.IsZero())
		assert.False(t, order.PlacedAt.IsZero())
		require.Len(t, order.Items, 2)
		for _, item := range order.Items {
			assert.True(t, item.Price.IsZero())
			assert.False(t, item.OutOfStock)
			assert.Equal(t, order.ID, item.OrderID)
			assert.NotEqual(t, uuid.Nil, item.ID)
		}
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		order, err := NewOrder(uuid.New(), nil)
		assert.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("rejects nil customer", func(t *testing.T) {
		order, err := NewOrder(uuid.Nil, []CartLine{{ProductID: uuid.New(), ProductName: "X", Quantity: 1}})
		assert.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		order, err := NewOrder(uuid.New(), []CartLine{{ProductID: uuid.New(), ProductName: "X", Quantity: 0}})
		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

// ============================================
// Fulfill Tests
// ============================================

func TestOrder_Fulfill(t *testing.T) {
	t.Run("completes order and totals in-stock lines", func(t *testing.T) {
		order := createTestOrder(t, 2, 3)

		decisions := map[uuid.UUID]FulfillmentDecision{
			order.Items[0].ProductID: priceDecision("2.50"),
			order.Items[1].ProductID: priceDecision("1.20"),
		}
		require.NoError(t, order.Fulfill(decisions))

		assert.Equal(t, OrderStatusCompleted, order.Status)
		// 2.50*2 + 1.20*3 = 8.60
		assert.True(t, order.Total.Equal(decimal.RequireFromString("8.60")), "got %s", order.Total)
	})

	t.Run("out-of-stock lines get zero price and are excluded from total", func(t *testing.T) {
		order := createTestOrder(t, 2, 4)

		decisions := map[uuid.UUID]FulfillmentDecision{
			order.Items[0].ProductID: priceDecision("3.00"),
			order.Items[1].ProductID: oosDecision(),
		}
		require.NoError(t, order.Fulfill(decisions))

		assert.True(t, order.Total.Equal(decimal.RequireFromString("6.00")))
		assert.True(t, order.Items[1].OutOfStock)
		assert.True(t, order.Items[1].Price.IsZero())
	})

	t.Run("all lines out of stock yields zero total", func(t *testing.T) {
		order := createTestOrder(t, 1, 1)

		decisions := map[uuid.UUID]FulfillmentDecision{
			order.Items[0].ProductID: oosDecision(),
			order.Items[1].ProductID: oosDecision(),
		}
		require.NoError(t, order.Fulfill(decisions))

		assert.Equal(t, OrderStatusCompleted, order.Status)
		assert.True(t, order.Total.IsZero())
	})

	t.Run("rejects fulfillment of completed order", func(t *testing.T) {
		order := createTestOrder(t, 1)
		decisions := map[uuid.UUID]FulfillmentDecision{
			order.Items[0].ProductID: priceDecision("1.00"),
		}
		require.NoError(t, order.Fulfill(decisions))

		err := order.Fulfill(decisions)
		assert.Error(t, err)
	})

	t.Run("invalid price rejects whole batch with no writes", func(t *testing.T) {
		order := createTestOrder(t, 2, 3)

		decisions := map[uuid.UUID]FulfillmentDecision{
			order.Items[0].ProductID: priceDecision("2.50"),
			order.Items[1].ProductID: priceDecision("abc"),
		}
		err := order.Fulfill(decisions)

		assert.Error(t, err)
		assert.Equal(t, OrderStatusPendingVendor, order.Status)
		assert.True(t, order.Total.IsZero())
		assert.True(t, order.Items[0].Price.IsZero())
	})

	t.Run("negative price rejects whole batch", func(t *testing.T) {
		order := createTestOrder(t, 1)

		err := order.Fulfill(map[uuid.UUID]FulfillmentDecision{
			order.Items[0].ProductID: priceDecision("-1.00"),
		})

		assert.Error(t, err)
		assert.Equal(t, OrderStatusPendingVendor, order.Status)
	})

	t.Run("missing decision rejects batch", func(t *testing.T) {
		order := createTestOrder(t, 1, 1)

		err := order.Fulfill(map[uuid.UUID]FulfillmentDecision{
			order.Items[0].ProductID: priceDecision("1.00"),
		})

		assert.Error(t, err)
		assert.Equal(t, OrderStatusPendingVendor, order.Status)
	})

	t.Run("decision for unknown line rejects batch", func(t *testing.T) {
		order := createTestOrder(t, 1)

		err := order.Fulfill(map[uuid.UUID]FulfillmentDecision{
			order.Items[0].ProductID: priceDecision("1.00"),
			uuid.New():               priceDecision("2.00"),
		})

		assert.Error(t, err)
		assert.Equal(t, OrderStatusPendingVendor, order.Status)
	})
}

// ============================================
// BillableItems Tests
// ============================================

func TestOrder_BillableItems(t *testing.T) {
	order := createTestOrder(t, 1, 2, 3)

	decisions := map[uuid.UUID]FulfillmentDecision{
		order.Items[0].ProductID: priceDecision("1.00"),
		order.Items[1].ProductID: oosDecision(),
		order.Items[2].ProductID: priceDecision("2.00"),
	}
	require.NoError(t, order.Fulfill(decisions))

	billable := order.BillableItems()
	require.Len(t, billable, 2)
	assert.Equal(t, order.Items[0].ProductID, billable[0].ProductID)
	assert.Equal(t, order.Items[2].ProductID, billable[1].ProductID)
}
