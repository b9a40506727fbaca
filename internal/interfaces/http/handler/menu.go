package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/interfaces/http/dto"
)

// MenuReader returns the flattened menu.
type MenuReader interface {
	GetMenu(ctx context.Context) ([]ordering.MenuItem, error)
}

// MenuHandler serves the menu projection
type MenuHandler struct {
	BaseHandler
	menu MenuReader
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menu MenuReader) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// GetMenu godoc
// @Summary      Get menu
// @Description  One row per catalog variation. Any catalog failure answers 500; a partial menu is never returned.
// @Tags         menu
// @Produce      json
// @Success      200 {array}  dto.MenuItemResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	items, err := h.menu.GetMenu(c.Request.Context())
	if err != nil {
		h.UpstreamError(c, "Error fetching menu", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuResponse(items))
}
