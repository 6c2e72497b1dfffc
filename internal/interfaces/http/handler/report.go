package handler

import (
	"strconv"

	reportapp "github.com/elir12131/agroflow/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles sales report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/total-sales", h.TotalSales)
		reports.GET("/top-products", h.TopProducts)
		reports.GET("/top-customers", h.TopCustomers)
		reports.GET("/customers/:customerID", h.CustomerReport)
	}
}

// TotalSales returns the completed sales total for a rolling window.
// The period defaults to month.
func (h *ReportHandler) TotalSales(c *gin.Context) {
	period := c.DefaultQuery("period", "month")

	result, err := h.reportService.TotalSales(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// TopProducts returns products ranked by units sold
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit := parseLimit(c)

	result, err := h.reportService.TopProducts(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// TopCustomers returns customers ranked by total spend
func (h *ReportHandler) TopCustomers(c *gin.Context) {
	limit := parseLimit(c)

	result, err := h.reportService.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CustomerReport returns one customer's completed order history
func (h *ReportHandler) CustomerReport(c *gin.Context) {
	customerID, err := parseCustomerIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	result, err := h.reportService.CustomerReport(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// parseLimit reads the limit query parameter. Non-numeric or missing
// values fall back to zero, which the service normalizes to the default.
func parseLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}
