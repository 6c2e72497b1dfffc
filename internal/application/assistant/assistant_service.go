package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elir12131/agroflow/internal/application/report"
	"github.com/elir12131/agroflow/internal/domain/assistant"
	"github.com/elir12131/agroflow/internal/domain/settings"
	"github.com/elir12131/agroflow/internal/domain/shared"
	"go.uber.org/zap"
)

// QueryRequest represents a free-text assistant question
type QueryRequest struct {
	Message string `json:"message" binding:"required"`
}

// QueryResponse represents the assistant's reply
type QueryResponse struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}

// AssistantService answers free-text report questions. It never returns
// an error to the caller; failures become an apologetic reply.
type AssistantService struct {
	reports     *report.ReportService
	settingRepo settings.SettingRepository
	logger      *zap.Logger
}

// NewAssistantService creates a new AssistantService
func NewAssistantService(
	reports *report.ReportService,
	settingRepo settings.SettingRepository,
	logger *zap.Logger,
) *AssistantService {
	return &AssistantService{
		reports:     reports,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// Query routes a message to a report and renders the result as text
func (s *AssistantService) Query(ctx context.Context, req QueryRequest) *QueryResponse {
	intent := assistant.Route(req.Message)
	resp := &QueryResponse{Intent: string(intent.Kind)}

	switch intent.Kind {
	case assistant.IntentGreeting:
		resp.Reply = s.greeting(ctx)

	case assistant.IntentThanks:
		resp.Reply = "You're welcome! Anything else?"

	case assistant.IntentTotalSales:
		resp.Reply = s.totalSales(ctx, intent)

	case assistant.IntentTopProducts:
		resp.Reply = s.topProducts(ctx, intent)

	case assistant.IntentTopCustomers:
		resp.Reply = s.topCustomers(ctx, intent)

	default:
		resp.Reply = "I can help with sales totals, top products, and top customers. How can I assist?"
	}

	return resp
}

func (s *AssistantService) greeting(ctx context.Context) string {
	setting, err := s.settingRepo.Get(ctx, settings.KeyBusinessName)
	if err != nil || strings.TrimSpace(setting.Value) == "" {
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("failed to load business name", zap.Error(err))
		}
		return "Hi there! What report can I get for you?"
	}
	return fmt.Sprintf("Hi there! What report can I get for you at %s?", setting.Value)
}

func (s *AssistantService) totalSales(ctx context.Context, intent assistant.Intent) string {
	result, err := s.reports.TotalSales(ctx, string(intent.Period))
	if err != nil {
		return s.apology("total sales query failed", err)
	}
	if !result.HasSales() {
		return fmt.Sprintf("No sales in the last %s.", result.Period)
	}
	return fmt.Sprintf("Total sales for the last %s were $%s.", result.Period, result.Total.StringFixed(2))
}

func (s *AssistantService) topProducts(ctx context.Context, intent assistant.Intent) string {
	rankings, err := s.reports.TopProducts(ctx, intent.Limit)
	if err != nil {
		return s.apology("top products query failed", err)
	}
	if len(rankings) == 0 {
		return "No completed sales yet, so there are no product rankings."
	}

	var b strings.Builder
	b.WriteString("Here are your top products by units sold:\n")
	for _, r := range rankings {
		fmt.Fprintf(&b, "%d. %s (%d units)\n", r.Rank, r.ProductName, r.UnitsSold)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *AssistantService) topCustomers(ctx context.Context, intent assistant.Intent) string {
	rankings, err := s.reports.TopCustomers(ctx, intent.Limit)
	if err != nil {
		return s.apology("top customers query failed", err)
	}
	if len(rankings) == 0 {
		return "No completed sales yet, so there are no customer rankings."
	}

	var b strings.Builder
	b.WriteString("Here are your top customers by total spend:\n")
	for _, r := range rankings {
		fmt.Fprintf(&b, "%d. %s ($%s)\n", r.Rank, r.CustomerName, r.TotalSpent.StringFixed(2))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *AssistantService) apology(msg string, err error) string {
	s.logger.Error(msg, zap.Error(err))
	return "Sorry, I couldn't pull that report right now. Please try again."
}
