package persistence

import (
	"context"
	"time"

	"github.com/elir12131/agroflow/internal/domain/ordering"
	"github.com/elir12131/agroflow/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSalesReportRepository implements report.SalesReportRepository with
// read-only aggregate queries over completed orders
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// TotalSales sums completed order totals placed at or after the given
// time. An empty window yields an invalid NullDecimal, not zero: SUM
// over no rows is NULL and that distinction is part of the contract.
func (r *GormSalesReportRepository) TotalSales(ctx context.Context, since time.Time) (decimal.NullDecimal, error) {
	var total decimal.NullDecimal
	row := r.db.WithContext(ctx).
		Table("orders").
		Select("SUM(total)").
		Where("status = ? AND placed_at >= ?", ordering.OrderStatusCompleted, since).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.NullDecimal{}, err
	}
	return total, nil
}

type productRankingRow struct {
	ProductID   uuid.UUID
	ProductName string
	UnitsSold   int64
}

// TopProducts ranks products by units sold across in-stock lines of
// completed orders
func (r *GormSalesReportRepository) TopProducts(ctx context.Context, limit int) ([]report.ProductRanking, error) {
	limit = report.NormalizeTopN(limit)

	var rows []productRankingRow
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id, order_items.product_name, SUM(order_items.quantity) AS units_sold").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ? AND order_items.out_of_stock = ?", ordering.OrderStatusCompleted, false).
		Group("order_items.product_id, order_items.product_name").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	rankings := make([]report.ProductRanking, len(rows))
	for i, row := range rows {
		rankings[i] = report.ProductRanking{
			Rank:        i + 1,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitsSold:   row.UnitsSold,
		}
	}
	return rankings, nil
}

type customerRankingRow struct {
	CustomerID   uuid.UUID
	CustomerName string
	TotalSpent   decimal.Decimal
}

// TopCustomers ranks customers by total invoiced amount across
// completed orders
func (r *GormSalesReportRepository) TopCustomers(ctx context.Context, limit int) ([]report.CustomerRanking, error) {
	limit = report.NormalizeTopN(limit)

	var rows []customerRankingRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.customer_id, customers.name AS customer_name, SUM(orders.total) AS total_spent").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.status = ?", ordering.OrderStatusCompleted).
		Group("orders.customer_id, customers.name").
		Order("total_spent DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	rankings := make([]report.CustomerRanking, len(rows))
	for i, row := range rows {
		rankings[i] = report.CustomerRanking{
			Rank:         i + 1,
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			TotalSpent:   row.TotalSpent,
		}
	}
	return rankings, nil
}

type customerOrderRow struct {
	OrderID  uuid.UUID
	PlacedAt time.Time
	Total    decimal.Decimal
}

// CustomerOrders lists a customer's completed orders newest first
func (r *GormSalesReportRepository) CustomerOrders(ctx context.Context, customerID uuid.UUID) ([]report.CustomerOrderSummary, error) {
	var rows []customerOrderRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("id AS order_id, placed_at, total").
		Where("customer_id = ? AND status = ?", customerID, ordering.OrderStatusCompleted).
		Order("placed_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]report.CustomerOrderSummary, len(rows))
	for i, row := range rows {
		summaries[i] = report.CustomerOrderSummary{
			OrderID:  row.OrderID,
			PlacedAt: row.PlacedAt,
			Total:    row.Total,
		}
	}
	return summaries, nil
}
