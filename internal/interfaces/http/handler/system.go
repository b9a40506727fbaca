package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voicewaiter/backend/internal/interfaces/http/dto"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Voice AI Restaurant Agent"

// SystemHandler handles service-level endpoints
type SystemHandler struct {
	BaseHandler
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.StatusResponse
// @Router       / [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok", Service: ServiceName})
}
