package assistant

import (
	"context"
	"testing"
	"time"

	appreport "github.com/elir12131/agroflow/internal/application/report"
	"github.com/elir12131/agroflow/internal/domain/partner"
	"github.com/elir12131/agroflow/internal/domain/report"
	"github.com/elir12131/agroflow/internal/domain/settings"
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

// MockSettingRepository is a mock implementation of SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, key string) (*settings.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.Setting), args.Error(1)
}

func (m *MockSettingRepository) Set(ctx context.Context, setting *settings.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func newTestAssistant(salesRepo *MockSalesReportRepository, settingRepo *MockSettingRepository) *AssistantService {
	reports := appreport.NewReportService(
		salesRepo,
		new(MockCustomerRepository),
		cache.NewInMemoryReportCache(),
		time.Minute,
		zap.NewNop(),
	)
	return NewAssistantService(reports, settingRepo, zap.NewNop())
}

// ============================================================
// Routing and rendering
// ============================================================

func TestAssistantService_Query_Greeting(t *testing.T) {
	mockSettingRepo := new(MockSettingRepository)
	service := newTestAssistant(new(MockSalesReportRepository), mockSettingRepo)

	ctx := context.Background()
	mockSettingRepo.On("Get", ctx, settings.KeyBusinessName).Return(nil, shared.ErrNotFound)

	resp := service.Query(ctx, QueryRequest{Message: "Hello!"})

	assert.Equal(t, "greeting", resp.Intent)
	assert.Equal(t, "Hi there! What report can I get for you?", resp.Reply)
}

func TestAssistantService_Query_GreetingWithBusinessName(t *testing.T) {
	mockSettingRepo := new(MockSettingRepository)
	service := newTestAssistant(new(MockSalesReportRepository), mockSettingRepo)

	ctx := context.Background()
	setting, err := settings.NewSetting(settings.KeyBusinessName, "AgroFlow Produce")
	require.NoError(t, err)
	mockSettingRepo.On("Get", ctx, settings.KeyBusinessName).Return(setting, nil)

	resp := service.Query(ctx, QueryRequest{Message: "hey"})

	assert.Equal(t, "Hi there! What report can I get for you at AgroFlow Produce?", resp.Reply)
}

func TestAssistantService_Query_GreetingWinsOverTotalSales(t *testing.T) {
	mockSettingRepo := new(MockSettingRepository)
	service := newTestAssistant(new(MockSalesReportRepository), mockSettingRepo)

	ctx := context.Background()
	mockSettingRepo.On("Get", ctx, settings.KeyBusinessName).Return(nil, shared.ErrNotFound)

	resp := service.Query(ctx, QueryRequest{Message: "hi, what were total sales?"})

	assert.Equal(t, "greeting", resp.Intent)
}

func TestAssistantService_Query_Thanks(t *testing.T) {
	service := newTestAssistant(new(MockSalesReportRepository), new(MockSettingRepository))

	resp := service.Query(context.Background(), QueryRequest{Message: "thanks a lot"})

	assert.Equal(t, "thanks", resp.Intent)
	assert.Equal(t, "You're welcome! Anything else?", resp.Reply)
}

func TestAssistantService_Query_TotalSalesDefaultsToMonth(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service := newTestAssistant(mockSalesRepo, new(MockSettingRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{Decimal: decimal.NewFromFloat(1234.5), Valid: true}, nil)

	resp := service.Query(ctx, QueryRequest{Message: "show me total sales"})

	assert.Equal(t, "total_sales", resp.Intent)
	assert.Equal(t, "Total sales for the last month were $1234.50.", resp.Reply)
}

func TestAssistantService_Query_TotalSalesForWeek(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service := newTestAssistant(mockSalesRepo, new(MockSettingRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{Decimal: decimal.NewFromInt(200), Valid: true}, nil)

	resp := service.Query(ctx, QueryRequest{Message: "total sales for the week"})

	assert.Equal(t, "Total sales for the last week were $200.00.", resp.Reply)
}

func TestAssistantService_Query_TotalSalesWithNoSales(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service := newTestAssistant(mockSalesRepo, new(MockSettingRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{}, nil)

	resp := service.Query(ctx, QueryRequest{Message: "what were total sales last month"})

	assert.Equal(t, "total_sales", resp.Intent)
	assert.Equal(t, "No sales in the last month.", resp.Reply)
}

func TestAssistantService_Query_TopProducts(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service := newTestAssistant(mockSalesRepo, new(MockSettingRepository))

	ctx := context.Background()
	mockSalesRepo.On("TopProducts", ctx, 3).
		Return([]report.ProductRanking{
			{Rank: 1, ProductID: uuid.New(), ProductName: "Apples", UnitsSold: 40},
			{Rank: 2, ProductID: uuid.New(), ProductName: "Pears", UnitsSold: 12},
		}, nil)

	resp := service.Query(ctx, QueryRequest{Message: "top 3 products"})

	assert.Equal(t, "top_products", resp.Intent)
	assert.Equal(t, "Here are your top products by units sold:\n1. Apples (40 units)\n2. Pears (12 units)", resp.Reply)
}

func TestAssistantService_Query_TopCustomersDefaultLimit(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service := newTestAssistant(mockSalesRepo, new(MockSettingRepository))

	ctx := context.Background()
	mockSalesRepo.On("TopCustomers", ctx, report.DefaultTopN).
		Return([]report.CustomerRanking{
			{Rank: 1, CustomerID: uuid.New(), CustomerName: "Riverside Deli", TotalSpent: decimal.NewFromFloat(99.9)},
		}, nil)

	resp := service.Query(ctx, QueryRequest{Message: "who are my top customers?"})

	assert.Equal(t, "top_customers", resp.Intent)
	assert.Equal(t, "Here are your top customers by total spend:\n1. Riverside Deli ($99.90)", resp.Reply)
}

func TestAssistantService_Query_EmptyRankings(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service := newTestAssistant(mockSalesRepo, new(MockSettingRepository))

	ctx := context.Background()
	mockSalesRepo.On("TopProducts", ctx, report.DefaultTopN).
		Return([]report.ProductRanking{}, nil)

	resp := service.Query(ctx, QueryRequest{Message: "top products"})

	assert.Equal(t, "No completed sales yet, so there are no product rankings.", resp.Reply)
}

func TestAssistantService_Query_Unknown(t *testing.T) {
	service := newTestAssistant(new(MockSalesReportRepository), new(MockSettingRepository))

	resp := service.Query(context.Background(), QueryRequest{Message: "order me a pizza"})

	assert.Equal(t, "unknown", resp.Intent)
	assert.Equal(t, "I can help with sales totals, top products, and top customers. How can I assist?", resp.Reply)
}

func TestAssistantService_Query_StoreFailureBecomesApology(t *testing.T) {
	mockSalesRepo := new(MockSalesReportRepository)
	service := newTestAssistant(mockSalesRepo, new(MockSettingRepository))

	ctx := context.Background()
	mockSalesRepo.On("TotalSales", ctx, mock.AnythingOfType("time.Time")).
		Return(decimal.NullDecimal{}, shared.ErrStore)

	resp := service.Query(ctx, QueryRequest{Message: "total sales"})

	assert.Equal(t, "total_sales", resp.Intent)
	assert.Equal(t, "Sorry, I couldn't pull that report right now. Please try again.", resp.Reply)
}
