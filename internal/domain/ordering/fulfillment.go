package ordering

import (
	"fmt"

	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FulfillmentDecision is the vendor's answer for a single order line:
// either a price quote (raw string, parsed during validation) or an
// out-of-stock marker.
type FulfillmentDecision struct {
	OutOfStock bool
	Price      string
}

// Fulfill applies vendor decisions to the order. Every line must have
// exactly one decision, and all prices are validated before anything is
// written to the aggregate, so a bad batch leaves the order untouched.
// On success the order becomes COMPLETED with the total summed over the
// in-stock lines.
func (o *Order) Fulfill(decisions map[uuid.UUID]FulfillmentDecision) error {
	if !o.Status.CanTransitionTo(OrderStatusCompleted) {
		return shared.NewDomainError("ORDER_NOT_PENDING",
			fmt.Sprintf("Order is %s and can no longer be fulfilled", o.Status))
	}

	for productID := range decisions {
		if o.itemIndex(productID) < 0 {
			return shared.NewDomainError("UNKNOWN_ORDER_LINE",
				fmt.Sprintf("Order has no line for product %s", productID))
		}
	}

	// Validate the whole batch first. A single unparseable or negative
	// price rejects the fulfillment with no partial writes.
	prices := make(map[uuid.UUID]decimal.Decimal, len(o.Items))
	for _, item := range o.Items {
		decision, ok := decisions[item.ProductID]
		if !ok {
			return shared.NewDomainError("MISSING_DECISION",
				fmt.Sprintf("No fulfillment decision for product %q", item.ProductName))
		}
		if decision.OutOfStock {
			prices[item.ProductID] = decimal.Zero
			continue
		}
		price, err := decimal.NewFromString(decision.Price)
		if err != nil {
			return shared.NewDomainError("INVALID_PRICE",
				fmt.Sprintf("Invalid price %q for product %q", decision.Price, item.ProductName))
		}
		if price.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE",
				fmt.Sprintf("Price for product %q cannot be negative", item.ProductName))
		}
		prices[item.ProductID] = price
	}

	total := decimal.Zero
	for i := range o.Items {
		item := &o.Items[i]
		decision := decisions[item.ProductID]
		item.OutOfStock = decision.OutOfStock
		item.Price = prices[item.ProductID]
		total = total.Add(item.Subtotal())
	}

	o.Status = OrderStatusCompleted
	o.Total = total
	o.Touch()
	return nil
}

func (o *Order) itemIndex(productID uuid.UUID) int {
	for i, item := range o.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}
