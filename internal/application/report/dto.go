package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TotalSalesResponse represents a sales total over a reporting window.
// Total is nil when the window holds no completed sales, which is not
// the same thing as a zero total.
type TotalSalesResponse struct {
	Period string           `json:"period"`
	Since  time.Time        `json:"since"`
	Total  *decimal.Decimal `json:"total"`
}

// HasSales reports whether any completed sale fell inside the window
func (r *TotalSalesResponse) HasSales() bool {
	return r.Total != nil
}

// ProductRankingResponse represents one row of the top-products report
type ProductRankingResponse struct {
	Rank        int       `json:"rank"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitsSold   int64     `json:"units_sold"`
}

// CustomerRankingResponse represents one row of the top-customers report
type CustomerRankingResponse struct {
	Rank         int             `json:"rank"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

// CustomerOrderResponse represents one completed order in a customer
// history report
type CustomerOrderResponse struct {
	OrderID  uuid.UUID       `json:"order_id"`
	PlacedAt time.Time       `json:"placed_at"`
	Total    decimal.Decimal `json:"total"`
}

// CustomerReportResponse represents a single customer's purchase history
type CustomerReportResponse struct {
	CustomerID   uuid.UUID               `json:"customer_id"`
	CustomerName string                  `json:"customer_name"`
	Orders       []CustomerOrderResponse `json:"orders"`
	TotalSpent   decimal.Decimal         `json:"total_spent"`
}
