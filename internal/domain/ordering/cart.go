package ordering

import (
	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is a single product entry in a cart.
// UnitPrice is a snapshot taken when the product is first added and is
// retained across later quantity changes.
type CartLine struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// Subtotal returns unit price times quantity for this line
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates order lines for a customer before checkout.
// Lines keep insertion order; quantities are always at least one.
type Cart struct {
	CustomerID uuid.UUID

	lines []*CartLine
	index map[uuid.UUID]*CartLine
}

// NewCart creates an empty cart for the given customer
func NewCart(customerID uuid.UUID) *Cart {
	return &Cart{
		CustomerID: customerID,
		index:      make(map[uuid.UUID]*CartLine),
	}
}

// AddItem adds a product to the cart. Adding a product that is already
// present accumulates its quantity; the price snapshot from the first
// add is kept.
func (c *Cart) AddItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	if line, ok := c.index[productID]; ok {
		line.Quantity += quantity
		return nil
	}

	line := &CartLine{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}
	c.lines = append(c.lines, line)
	c.index[productID] = line
	return nil
}

// RemoveOne decrements the quantity of a product by one, removing the
// line entirely when it reaches zero
func (c *Cart) RemoveOne(productID uuid.UUID) error {
	line, ok := c.index[productID]
	if !ok {
		return shared.NewDomainError("NOT_IN_CART", "Product is not in the cart")
	}

	line.Quantity--
	if line.Quantity > 0 {
		return nil
	}

	delete(c.index, productID)
	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes all lines from the cart
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[uuid.UUID]*CartLine)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	for i, l := range c.lines {
		out[i] = *l
	}
	return out
}

// TotalQuantity returns the total number of units across all lines
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// EstimatedTotal returns the cart value based on price snapshots.
// The actual invoice total is only known after vendor fulfillment.
func (c *Cart) EstimatedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
