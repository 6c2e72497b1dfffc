package report

import (
	"context"
	"time"

	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesPeriod is a rolling reporting window
type SalesPeriod string

const (
	PeriodDay   SalesPeriod = "day"
	PeriodWeek  SalesPeriod = "week"
	PeriodMonth SalesPeriod = "month"
)

// ParsePeriod validates a period string
func ParsePeriod(s string) (SalesPeriod, error) {
	switch SalesPeriod(s) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return SalesPeriod(s), nil
	}
	return "", shared.NewDomainError("INVALID_PERIOD", "Period must be one of: day, week, month")
}

// WindowStart returns the lower bound of the reporting window relative
// to now. Day means since local midnight, week the last 7 days, month
// the last 30 days.
func (p SalesPeriod) WindowStart(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	default:
		return now.AddDate(0, 0, -30)
	}
}

// DefaultTopN is used when a ranking size is not given or not positive
const DefaultTopN = 5

// MaxTopN caps ranking sizes
const MaxTopN = 100

// NormalizeTopN clamps a requested ranking size into the allowed range
func NormalizeTopN(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}

// ProductRanking is one row of the top-products report, ranked by units
// sold across in-stock lines of completed orders
type ProductRanking struct {
	Rank        int
	ProductID   uuid.UUID
	ProductName string
	UnitsSold   int64
}

// CustomerRanking is one row of the top-customers report, ranked by
// total invoiced amount across completed orders
type CustomerRanking struct {
	Rank         int
	CustomerID   uuid.UUID
	CustomerName string
	TotalSpent   decimal.Decimal
}

// CustomerOrderSummary is one completed order in a customer history report
type CustomerOrderSummary struct {
	OrderID  uuid.UUID
	PlacedAt time.Time
	Total    decimal.Decimal
}

// SalesReportRepository provides read-only aggregate queries over
// completed orders.
// TotalSales distinguishes "no completed sales in the window" (invalid
// NullDecimal) from a genuine zero total, so callers can render a
// no-sales message.
type SalesReportRepository interface {
	TotalSales(ctx context.Context, since time.Time) (decimal.NullDecimal, error)
	TopProducts(ctx context.Context, limit int) ([]ProductRanking, error)
	TopCustomers(ctx context.Context, limit int) ([]CustomerRanking, error)
	CustomerOrders(ctx context.Context, customerID uuid.UUID) ([]CustomerOrderSummary, error)
}
