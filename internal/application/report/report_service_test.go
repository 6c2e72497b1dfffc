package report

import (
	"context"
	"testing"
	"time"

	"github.com/elir12131/agroflow/internal/domain/partner"
	"github.com/elir12131/agroflow/internal/domain/report"
	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/elir12131/agroflow/internal/infrastructure/cache"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSalesReportRepository is a mock implementation of SalesReportRepository
type MockSalesReportRepository struct {
	mock.Mock
}

func (m *MockSalesReportRepository) TotalSales(ctx context.Context, since time.Time) (decimal.NullDecimal, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

func (m *MockSalesReportRepository) TopProducts(ctx context.Context, limit int) ([]report.ProductRanking, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]report.ProductRanking), args.Error(1)
}

func (m *MockSalesReportRepository) TopCustomers(ctx context.Context, limit int) ([]report.CustomerRanking, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]report.CustomerRanking), args.Error(1)
}

func (m *MockSalesReportRepository) CustomerOrders(ctx context.Context, customerID uuid.UUID) ([]report.CustomerOrderSummary, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]report.CustomerOrderSummary), args.Error(1)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestReportService(salesRepo *MockSalesReportRepository, customerRepo *MockCustomerRepository) (*ReportService, *cache.InMemoryReportCache) {
	reportCache := cache.NewInMemoryReportCache()
	service := NewReportService(salesRepo, customerRepo, reportCache, time.Minute, zap.NewNop())
	return service, reportCache
}

// ============================================================
// TotalSales
// ============================================================

func TestReportService_TotalSales_Month(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service, _ := newTestReportService(mockSalesRepo, new(MockCustomerRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{Decimal: decimal.NewFromFloat(1234.56), Valid: true}, nil)

	result, err := service.TotalSales(ctx, "month")

	require.NoError(t, err)
	assert.Equal(t, "month", result.Period)
	require.True(t, result.HasSales())
	assert.True(t, result.Total.Equal(decimal.NewFromFloat(1234.56)))
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), result.Since, time.Minute)
}

func TestReportService_TotalSales_DayWindowStartsAtMidnight(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service, _ := newTestReportService(mockSalesRepo, new(MockCustomerRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}, nil)

	result, err := service.TotalSales(ctx, "day")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Since.Hour())
	assert.Equal(t, 0, result.Since.Minute())
}

func TestReportService_TotalSales_NoSalesInWindow(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service, _ := newTestReportService(mockSalesRepo, new(MockCustomerRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{}, nil).Once()

	result, err := service.TotalSales(ctx, "week")

	require.NoError(t, err)
	assert.False(t, result.HasSales())
	assert.Nil(t, result.Total)

	// The no-sales result survives a cache round trip.
	cached, err := service.TotalSales(ctx, "week")
	require.NoError(t, err)
	assert.False(t, cached.HasSales())
	mockSalesRepo.AssertNumberOfCalls(t, "TotalSales", 1)
}

func TestReportService_TotalSales_InvalidPeriod(t *testing.T) {
	service, _ := newTestReportService(new(MockSalesReportRepository), new(MockCustomerRepository))

	_, err := service.TotalSales(context.Background(), "quarter")

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PERIOD", domainErr.Code)
}

func TestReportService_TotalSales_SecondCallHitsCache(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service, _ := newTestReportService(mockSalesRepo, new(MockCustomerRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{Decimal: decimal.NewFromInt(100), Valid: true}, nil).Once()

	first, err := service.TotalSales(ctx, "week")
	require.NoError(t, err)
	second, err := service.TotalSales(ctx, "week")
	require.NoError(t, err)

	require.True(t, first.HasSales())
	require.True(t, second.HasSales())
	assert.True(t, first.Total.Equal(*second.Total))
	mockSalesRepo.AssertNumberOfCalls(t, "TotalSales", 1)
}

func TestReportService_TotalSales_InvalidationForcesRecompute(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service, reportCache := newTestReportService(mockSalesRepo, new(MockCustomerRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{Decimal: decimal.NewFromInt(100), Valid: true}, nil)

	_, err := service.TotalSales(ctx, "week")
	require.NoError(t, err)

	require.NoError(t, reportCache.Invalidate(ctx))

	_, err = service.TotalSales(ctx, "week")
	require.NoError(t, err)
	mockSalesRepo.AssertNumberOfCalls(t, "TotalSales", 2)
}

// ============================================================
// Rankings
// ============================================================

func TestReportService_TopProducts_NormalizesLimit(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service, _ := newTestReportService(mockSalesRepo, new(MockCustomerRepository))

	ctx := context.Background()
	mockSalesRepo.On("TopProducts", ctx, report.DefaultTopN).
		Return([]report.ProductRanking{
			{Rank: 1, ProductID: uuid.New(), ProductName: "Apples", UnitsSold: 40},
			{Rank: 2, ProductID: uuid.New(), ProductName: "Pears", UnitsSold: 12},
		}, nil)

	result, err := service.TopProducts(ctx, 0)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].Rank)
	assert.Equal(t, "Apples", result[0].ProductName)
	assert.Equal(t, int64(40), result[0].UnitsSold)
	mockSalesRepo.AssertExpectations(t)
}

func TestReportService_TopCustomers_CapsLimit(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service, _ := newTestReportService(mockSalesRepo, new(MockCustomerRepository))

	ctx := context.Background()
	mockSalesRepo.On("TopCustomers", ctx, report.MaxTopN).
		Return([]report.CustomerRanking{}, nil)

	result, err := service.TopCustomers(ctx, 5000)

	require.NoError(t, err)
	assert.Empty(t, result)
	mockSalesRepo.AssertExpectations(t)
}

// ============================================================
// Customer report
// ============================================================

func TestReportService_CustomerReport_SumsCompletedOrders(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	mockCustomerRepo := new(MockCustomerRepository)
	service, _ := newTestReportService(mockSalesRepo, mockCustomerRepo)

	ctx := context.Background()
	customer, err := partner.NewCustomer("Riverside Deli", "", "", "", "")
	require.NoError(t, err)

	mockCustomerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
	mockSalesRepo.On("CustomerOrders", ctx, customer.ID).
		Return([]report.CustomerOrderSummary{
			{OrderID: uuid.New(), PlacedAt: time.Now(), Total: decimal.NewFromFloat(10.50)},
			{OrderID: uuid.New(), PlacedAt: time.Now().Add(-time.Hour), Total: decimal.NewFromFloat(4.25)},
		}, nil)

	result, err := service.CustomerReport(ctx, customer.ID)

	require.NoError(t, err)
	assert.Equal(t, "Riverside Deli", result.CustomerName)
	assert.Len(t, result.Orders, 2)
	assert.True(t, result.TotalSpent.Equal(decimal.NewFromFloat(14.75)))
}

func TestReportService_CustomerReport_CustomerNotFound(t *testing.T) {
	mockCustomerRepo := new(MockCustomerRepository)
	service, _ := newTestReportService(new(MockSalesReportRepository), mockCustomerRepo)

	ctx := context.Background()
	id := uuid.New()
	mockCustomerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := service.CustomerReport(ctx, id)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
