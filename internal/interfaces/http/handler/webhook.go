package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	appvoice "github.com/voicewaiter/backend/internal/application/voice"
	"github.com/voicewaiter/backend/internal/domain/voice"
	"github.com/voicewaiter/backend/internal/infrastructure/logger"
	"github.com/voicewaiter/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// EventHandler handles one normalized voice event.
type EventHandler interface {
	Handle(ctx context.Context, event *voice.Event) appvoice.Reply
}

// WebhookHandler receives voice platform server messages
type WebhookHandler struct {
	BaseHandler
	events EventHandler
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(events EventHandler) *WebhookHandler {
	return &WebhookHandler{events: events}
}

// Handle godoc
// @Summary      Voice platform webhook
// @Description  Receives server messages. tool-calls answers one result per place_order call; other event types are acknowledged. A body that is not a JSON object answers 500.
// @Tags         vapi
// @Accept       json
// @Produce      json
// @Param        X-Vapi-Secret header string false "Shared webhook secret, required when one is configured"
// @Param        payload body object true "Server message envelope"
// @Success      200 {object} dto.ToolCallsResponse
// @Failure      400 {object} dto.NoValidItemsResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      413 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /vapi-webhook [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge,
				"Request body exceeds maximum allowed size")
			return
		}
		h.webhookError(c, err)
		return
	}

	event, err := voice.ParseEvent(body)
	if err != nil {
		h.webhookError(c, err)
		return
	}

	h.render(c, h.events.Handle(c.Request.Context(), event))
}

func (h *WebhookHandler) render(c *gin.Context, reply appvoice.Reply) {
	switch reply.Kind {
	case appvoice.ReplyToolResults:
		c.JSON(http.StatusOK, dto.NewToolCallsResponse(reply.Results))
	case appvoice.ReplyNoValidItems:
		c.JSON(http.StatusBadRequest, dto.NewNoValidItemsResponse())
	case appvoice.ReplyFunctionOrdered:
		c.JSON(http.StatusOK, dto.NewFunctionOrderedResponse(reply.OrderID))
	case appvoice.ReplyFunctionNoItems:
		c.JSON(http.StatusBadRequest, dto.NewFunctionNoItemsResponse())
	case appvoice.ReplyFunctionFailed:
		h.webhookError(c, reply.Err)
	case appvoice.ReplyFunctionReceived:
		c.JSON(http.StatusOK, dto.NewFunctionReceivedResponse(reply.FunctionName))
	default:
		c.JSON(http.StatusOK, dto.NewReceivedResponse(reply.EventType))
	}
}

func (h *WebhookHandler) webhookError(c *gin.Context, err error) {
	logger.L(c.Request.Context()).Error("Error processing webhook", zap.Error(err))
	h.InternalError(c, "Error processing webhook")
}
