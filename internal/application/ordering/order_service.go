package ordering

import (
	"context"

	"github.com/elir12131/agroflow/internal/domain/ordering"
	"github.com/elir12131/agroflow/internal/domain/partner"
	"github.com/elir12131/agroflow/internal/infrastructure/cache"
	"github.com/elir12131/agroflow/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order listing and vendor fulfillment
type OrderService struct {
	orderRepo    ordering.OrderRepository
	customerRepo partner.CustomerRepository
	reportCache  cache.ReportCache
	logger       *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.OrderRepository,
	customerRepo partner.CustomerRepository,
	reportCache cache.ReportCache,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		reportCache:  reportCache,
		logger:       logger,
	}
}

// List returns orders newest first, optionally filtered by customer
// name and status
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, error) {
	domainFilter := ordering.DefaultOrderFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	domainFilter.CustomerName = filter.Customer
	domainFilter.Status = ordering.OrderStatus(filter.Status)
	domainFilter.Normalize()

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *ToOrderResponse(&orders[i], orders[i].Items)
	}
	return responses, nil
}

// GetDetails returns an order with its billable lines only.
// Out-of-stock lines never appear on the invoice view.
func (s *OrderService) GetDetails(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order, order.BillableItems())
	s.attachCustomerName(ctx, resp)
	return resp, nil
}

// GetLines returns an order with all of its lines, including
// out-of-stock ones. This is the view the vendor fulfills from.
func (s *OrderService) GetLines(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order, order.Items)
	s.attachCustomerName(ctx, resp)
	return resp, nil
}

// Fulfill applies the vendor's decisions to a pending order. The whole
// batch is validated before anything is written, and the write itself
// is one transaction.
func (s *OrderService) Fulfill(ctx context.Context, orderID uuid.UUID, req FulfillOrderRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "order.fulfill",
		telemetry.WithAttribute("order_id", orderID.String()),
	)
	defer span.End()

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	decisions := make(map[uuid.UUID]ordering.FulfillmentDecision, len(req.Lines))
	for _, line := range req.Lines {
		decisions[line.ProductID] = ordering.FulfillmentDecision{
			OutOfStock: line.OutOfStock,
			Price:      line.Price,
		}
	}

	if err := order.Fulfill(decisions); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if err := s.orderRepo.UpdateFulfillment(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	// Completed orders feed every report, so drop cached payloads.
	if err := s.reportCache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate report cache after fulfillment",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("order fulfilled",
		zap.String("order_id", orderID.String()),
		zap.String("total", order.Total.String()),
	)

	resp := ToOrderResponse(order, order.Items)
	s.attachCustomerName(ctx, resp)
	return resp, nil
}

// attachCustomerName best-effort resolves the customer name for a
// single-order view
func (s *OrderService) attachCustomerName(ctx context.Context, resp *OrderResponse) {
	customer, err := s.customerRepo.FindByID(ctx, resp.CustomerID)
	if err != nil {
		s.logger.Debug("could not resolve customer name for order",
			zap.String("order_id", resp.ID.String()),
			zap.Error(err),
		)
		return
	}
	resp.CustomerName = customer.Name
}
