package handler

import (
	settingsapp "github.com/elir12131/agroflow/internal/application/settings"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles business settings API endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// RegisterRoutes registers settings routes
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	{
		settings.GET("/:key", h.Get)
		settings.PUT("/:key", h.Set)
	}
}

// Get returns a setting by key
func (h *SettingsHandler) Get(c *gin.Context) {
	result, err := h.settingsService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Set creates or replaces a setting value
func (h *SettingsHandler) Set(c *gin.Context) {
	var req settingsapp.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.settingsService.Set(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
