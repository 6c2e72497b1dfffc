package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestCart() *Cart {
	return NewCart(uuid.New())
}

func addTestLine(t *testing.T, cart *Cart, name string, price string, qty int) uuid.UUID {
	productID := uuid.New()
	unitPrice, err := decimal.NewFromString(price)
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(productID, name, unitPrice, qty))
	return productID
}

// ============================================
// AddItem Tests
// ============================================

func TestCart_AddItem(t *testing.T) {
	t.Run("adds new line", func(t *testing.T) {
		cart := createTestCart()
		productID := addTestLine(t, cart, "Tomatoes", "2.50", 3)

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, productID, lines[0].ProductID)
		assert.Equal(t, "Tomatoes", lines[0].ProductName)
		assert.Equal(t, 3, lines[0].Quantity)
		assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
	})

	t.Run("accumulates quantity for existing product", func(t *testing.T) {
		cart := createTestCart()
		productID := uuid.New()
		price := decimal.RequireFromString("2.50")

		require.NoError(t, cart.AddItem(productID, "Tomatoes", price, 2))
		require.NoError(t, cart.AddItem(productID, "Tomatoes", price, 3))

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("keeps price snapshot from first add", func(t *testing.T) {
		cart := createTestCart()
		productID := uuid.New()

		require.NoError(t, cart.AddItem(productID, "Tomatoes", decimal.RequireFromString("2.50"), 1))
		require.NoError(t, cart.AddItem(productID, "Tomatoes", decimal.RequireFromString("9.99"), 1))

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		cart := createTestCart()
		err := cart.AddItem(uuid.New(), "Tomatoes", decimal.Zero, 0)
		assert.Error(t, err)

		err = cart.AddItem(uuid.New(), "Tomatoes", decimal.Zero, -1)
		assert.Error(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		cart := createTestCart()
		first := addTestLine(t, cart, "Apples", "1.00", 1)
		second := addTestLine(t, cart, "Bananas", "2.00", 1)
		third := addTestLine(t, cart, "Carrots", "3.00", 1)

		lines := cart.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, first, lines[0].ProductID)
		assert.Equal(t, second, lines[1].ProductID)
		assert.Equal(t, third, lines[2].ProductID)
	})
}

// ============================================
// RemoveOne Tests
// ============================================

func TestCart_RemoveOne(t *testing.T) {
	t.Run("decrements quantity", func(t *testing.T) {
		cart := createTestCart()
		productID := addTestLine(t, cart, "Tomatoes", "2.50", 3)

		require.NoError(t, cart.RemoveOne(productID))

		lines := cart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("removes line when quantity reaches zero", func(t *testing.T) {
		cart := createTestCart()
		productID := addTestLine(t, cart, "Tomatoes", "2.50", 1)

		require.NoError(t, cart.RemoveOne(productID))

		assert.True(t, cart.IsEmpty())
		assert.Error(t, cart.RemoveOne(productID))
	})

	t.Run("errors for product not in cart", func(t *testing.T) {
		cart := createTestCart()
		err := cart.RemoveOne(uuid.New())
		assert.Error(t, err)
	})
}

// ============================================
// Totals Tests
// ============================================

func TestCart_Totals(t *testing.T) {
	t.Run("empty cart has zero totals", func(t *testing.T) {
		cart := createTestCart()
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, 0, cart.TotalQuantity())
		assert.True(t, cart.EstimatedTotal().IsZero())
	})

	t.Run("sums quantity and value across lines", func(t *testing.T) {
		cart := createTestCart()
		addTestLine(t, cart, "Apples", "1.50", 2)
		addTestLine(t, cart, "Bananas", "0.75", 4)

		assert.Equal(t, 6, cart.TotalQuantity())
		// 1.50*2 + 0.75*4 = 6.00
		assert.True(t, cart.EstimatedTotal().Equal(decimal.RequireFromString("6.00")))
	})
}

func TestCart_Clear(t *testing.T) {
	cart := createTestCart()
	addTestLine(t, cart, "Apples", "1.50", 2)
	addTestLine(t, cart, "Bananas", "0.75", 4)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines())
	assert.Equal(t, 0, cart.TotalQuantity())
}
