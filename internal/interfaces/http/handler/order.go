package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/infrastructure/telemetry"
	"github.com/voicewaiter/backend/internal/interfaces/http/dto"
	"github.com/voicewaiter/backend/internal/interfaces/http/middleware"
)

// OrderManager creates orders and lists recent ones.
type OrderManager interface {
	PlaceOrder(ctx context.Context, req ordering.OrderRequest, source string) (*ordering.PlacedOrder, error)
	RecentOrders(ctx context.Context, limit int) ([]ordering.OrderSummary, error)
}

// OrderHandler handles direct order endpoints
type OrderHandler struct {
	BaseHandler
	orders OrderManager
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders OrderManager) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder godoc
// @Summary      Create order
// @Description  Places an order from a JSON body, bypassing the voice webhook
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "Order to place"
// @Success      200 {object} dto.CreateOrderResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /order [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	placed, err := h.orders.PlaceOrder(c.Request.Context(), req.ToOrderRequest(), telemetry.OrderSourceDirect)
	if err != nil {
		h.HandleError(c, err, "Error creating order")
		return
	}

	c.JSON(http.StatusOK, dto.NewCreateOrderResponse(placed))
}

// RecentOrders godoc
// @Summary      List recent orders
// @Description  Newest orders at the location, newest first
// @Tags         orders
// @Produce      json
// @Param        limit query int false "Maximum orders to return" minimum(1) maximum(500) default(3)
// @Success      200 {object} dto.RecentOrdersResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /orders/recent [get]
func (h *OrderHandler) RecentOrders(c *gin.Context) {
	var query dto.RecentOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	summaries, err := h.orders.RecentOrders(c.Request.Context(), query.Limit)
	if err != nil {
		h.UpstreamError(c, "Error retrieving orders", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRecentOrdersResponse(summaries))
}
