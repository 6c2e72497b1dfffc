package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elir12131/agroflow/internal/domain/partner"
	"github.com/elir12131/agroflow/internal/domain/report"
	"github.com/elir12131/agroflow/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportService computes sales aggregates over completed orders.
// Results are cached briefly; fulfillment invalidates the cache.
type ReportService struct {
	salesRepo    report.SalesReportRepository
	customerRepo partner.CustomerRepository
	cache        cache.ReportCache
	ttl          time.Duration
	logger       *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	salesRepo report.SalesReportRepository,
	customerRepo partner.CustomerRepository,
	reportCache cache.ReportCache,
	ttl time.Duration,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		salesRepo:    salesRepo,
		customerRepo: customerRepo,
		cache:        reportCache,
		ttl:          ttl,
		logger:       logger,
	}
}

// TotalSales returns the sum of completed order totals since the start
// of the given period
func (s *ReportService) TotalSales(ctx context.Context, period string) (*TotalSalesResponse, error) {
	p, err := report.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("total_sales:%s", p)
	var resp TotalSalesResponse
	if s.fromCache(ctx, key, &resp) {
		return &resp, nil
	}

	since := p.WindowStart(time.Now())
	total, err := s.salesRepo.TotalSales(ctx, since)
	if err != nil {
		return nil, err
	}

	resp = TotalSalesResponse{Period: string(p), Since: since}
	if total.Valid {
		resp.Total = &total.Decimal
	}
	s.toCache(ctx, key, resp)
	return &resp, nil
}

// TopProducts returns products ranked by units sold across completed
// orders, excluding out-of-stock lines
func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]ProductRankingResponse, error) {
	limit = report.NormalizeTopN(limit)

	key := fmt.Sprintf("top_products:%d", limit)
	var cached []ProductRankingResponse
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	rankings, err := s.salesRepo.TopProducts(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]ProductRankingResponse, len(rankings))
	for i, r := range rankings {
		resp[i] = ProductRankingResponse{
			Rank:        r.Rank,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			UnitsSold:   r.UnitsSold,
		}
	}
	s.toCache(ctx, key, resp)
	return resp, nil
}

// TopCustomers returns customers ranked by total spend across completed
// orders
func (s *ReportService) TopCustomers(ctx context.Context, limit int) ([]CustomerRankingResponse, error) {
	limit = report.NormalizeTopN(limit)

	key := fmt.Sprintf("top_customers:%d", limit)
	var cached []CustomerRankingResponse
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	rankings, err := s.salesRepo.TopCustomers(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]CustomerRankingResponse, len(rankings))
	for i, r := range rankings {
		resp[i] = CustomerRankingResponse{
			Rank:         r.Rank,
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			TotalSpent:   r.TotalSpent,
		}
	}
	s.toCache(ctx, key, resp)
	return resp, nil
}

// CustomerReport returns one customer's completed orders, newest first,
// with their lifetime spend
func (s *ReportService) CustomerReport(ctx context.Context, customerID uuid.UUID) (*CustomerReportResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("customer:%s", customerID)
	var resp CustomerReportResponse
	if s.fromCache(ctx, key, &resp) {
		return &resp, nil
	}

	summaries, err := s.salesRepo.CustomerOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}

	resp = CustomerReportResponse{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Orders:       make([]CustomerOrderResponse, len(summaries)),
		TotalSpent:   decimal.Zero,
	}
	for i, o := range summaries {
		resp.Orders[i] = CustomerOrderResponse{
			OrderID:  o.OrderID,
			PlacedAt: o.PlacedAt,
			Total:    o.Total,
		}
		resp.TotalSpent = resp.TotalSpent.Add(o.Total)
	}
	s.toCache(ctx, key, resp)
	return &resp, nil
}

// fromCache loads a cached report payload into dst. Cache failures are
// logged and treated as misses.
func (s *ReportService) fromCache(ctx context.Context, key string, dst any) bool {
	data, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn("report cache payload corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *ReportService) toCache(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("report cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
