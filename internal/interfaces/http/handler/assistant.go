package handler

import (
	assistantapp "github.com/elir12131/agroflow/internal/application/assistant"
	"github.com/gin-gonic/gin"
)

// AssistantHandler handles the free-text report assistant endpoint
type AssistantHandler struct {
	BaseHandler
	assistantService *assistantapp.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistantService *assistantapp.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService}
}

// RegisterRoutes registers assistant routes
func (h *AssistantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assistant/query", h.Query)
}

// Query answers a free-text report question
func (h *AssistantHandler) Query(c *gin.Context) {
	var req assistantapp.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	h.Success(c, h.assistantService.Query(c.Request.Context(), req))
}
