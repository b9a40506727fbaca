package voice

import (
	"context"
	"errors"

	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/domain/voice"
	"github.com/voicewaiter/backend/internal/infrastructure/logger"
	"github.com/voicewaiter/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// OrderPlacer creates an order from a validated request.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req ordering.OrderRequest, source string) (*ordering.PlacedOrder, error)
}

// WebhookMetrics records webhook traffic.
type WebhookMetrics interface {
	RecordWebhookEvent(ctx context.Context, eventType string)
	RecordToolCall(ctx context.Context, tool, outcome string)
}

type noopWebhookMetrics struct{}

func (noopWebhookMetrics) RecordWebhookEvent(context.Context, string)     {}
func (noopWebhookMetrics) RecordToolCall(context.Context, string, string) {}

// ReplyKind selects how a Reply is rendered.
type ReplyKind int

const (
	// ReplyToolResults carries one result per tool call, in input order.
	ReplyToolResults ReplyKind = iota + 1
	// ReplyNoValidItems means a place_order call had no valid items. Results
	// holds the calls processed up to and including the rejected one.
	ReplyNoValidItems
	// ReplyFunctionOrdered means a legacy function call placed OrderID.
	ReplyFunctionOrdered
	// ReplyFunctionNoItems means a legacy order function carried no valid items.
	ReplyFunctionNoItems
	// ReplyFunctionFailed means a legacy order function could not create the order; see Err.
	ReplyFunctionFailed
	// ReplyFunctionReceived acknowledges a legacy function this service does not handle.
	ReplyFunctionReceived
	// ReplyAcknowledged acknowledges any other event type.
	ReplyAcknowledged
)

// Reply is the outcome of handling one webhook event.
type Reply struct {
	Kind         ReplyKind
	EventType    voice.EventType
	Results      []voice.ToolCallResult
	FunctionName string
	OrderID      string
	Err          error
}

// WebhookService dispatches normalized voice events.
type WebhookService struct {
	orders  OrderPlacer
	metrics WebhookMetrics
}

// NewWebhookService creates a new WebhookService. A nil metrics recorder
// disables webhook metrics.
func NewWebhookService(orders OrderPlacer, metrics WebhookMetrics) *WebhookService {
	if metrics == nil {
		metrics = noopWebhookMetrics{}
	}
	return &WebhookService{orders: orders, metrics: metrics}
}

// Handle dispatches event on its type. It does not fail: every outcome,
// including order-creation errors, is described by the returned Reply.
func (s *WebhookService) Handle(ctx context.Context, event *voice.Event) Reply {
	ctx = logger.WithCallID(ctx, event.CallID)
	ctx, span := telemetry.StartServiceSpan(ctx, "webhook", "Handle",
		telemetry.WithAttribute(telemetry.SpanAttrEventType, string(event.Type)),
		telemetry.WithAttribute(telemetry.SpanAttrCallID, event.CallID))
	defer span.End()

	s.metrics.RecordWebhookEvent(ctx, string(event.Type))
	logger.L(ctx).Info("Received voice webhook", zap.String("type", string(event.Type)))

	switch event.Type {
	case voice.EventTypeToolCalls:
		telemetry.SetAttributes(span, telemetry.SpanAttrToolCallCount, len(event.ToolCalls))
		return s.handleToolCalls(ctx, event.ToolCalls)
	case voice.EventTypeFunctionCall:
		return s.handleFunctionCall(ctx, event.FunctionCall)
	case voice.EventTypeEndOfCallReport:
		callID := event.CallID
		if callID == "" {
			callID = "unknown"
		}
		logger.L(ctx).Info("Call ended", zap.String("call", callID))
		return Reply{Kind: ReplyAcknowledged, EventType: event.Type}
	default:
		logger.L(ctx).Info("Unhandled webhook type", zap.String("type", string(event.Type)))
		return Reply{Kind: ReplyAcknowledged, EventType: event.Type}
	}
}

func (s *WebhookService) handleToolCalls(ctx context.Context, calls []voice.ToolCall) Reply {
	results := make([]voice.ToolCallResult, 0, len(calls))
	for _, call := range calls {
		var result voice.ToolCallResult
		if call.Name == voice.ToolPlaceOrder {
			result = s.placeOrderTool(ctx, call)
		} else {
			logger.L(ctx).Info("Unhandled tool call", zap.String("tool", call.Name))
			result = voice.Unhandled(call)
		}
		s.metrics.RecordToolCall(ctx, call.Name, result.Kind.String())
		results = append(results, result)

		if result.Kind == voice.ResultRejected {
			return Reply{Kind: ReplyNoValidItems, EventType: voice.EventTypeToolCalls, Results: results}
		}
	}
	return Reply{Kind: ReplyToolResults, EventType: voice.EventTypeToolCalls, Results: results}
}

func (s *WebhookService) placeOrderTool(ctx context.Context, call voice.ToolCall) voice.ToolCallResult {
	ctx, span := telemetry.StartServiceSpan(ctx, "webhook", "PlaceOrderTool",
		telemetry.WithAttribute(telemetry.SpanAttrToolName, call.Name),
		telemetry.WithAttribute(telemetry.SpanAttrToolCallID, call.ID))
	defer span.End()

	req, skipped := voice.OrderRequestFrom(call.Parameters)
	logSkipped(ctx, skipped)

	placed, err := s.orders.PlaceOrder(ctx, req, telemetry.OrderSourceToolCall)
	switch {
	case errors.Is(err, ordering.ErrNoValidItems):
		logger.L(ctx).Error("No valid items found in order", zap.String("tool_call_id", call.ID))
		return voice.Rejected(call, err)
	case err != nil:
		telemetry.RecordError(span, err)
		logger.L(ctx).Error("Error creating order", zap.String("tool_call_id", call.ID), zap.Error(err))
		return voice.Failed(call, err)
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrOrderID, placed.ID)
	return voice.Confirmed(call, placed.ID, voice.ConfirmationMessage(*placed))
}

func (s *WebhookService) handleFunctionCall(ctx context.Context, fc *voice.FunctionCall) Reply {
	if fc == nil {
		fc = &voice.FunctionCall{}
	}
	if !voice.IsOrderFunction(fc.Name) {
		logger.L(ctx).Info("Unhandled function call", zap.String("function", fc.Name))
		return Reply{Kind: ReplyFunctionReceived, EventType: voice.EventTypeFunctionCall, FunctionName: fc.Name}
	}

	req, skipped := voice.OrderRequestFrom(fc.Parameters)
	logSkipped(ctx, skipped)

	placed, err := s.orders.PlaceOrder(ctx, req, telemetry.OrderSourceFunctionCall)
	switch {
	case errors.Is(err, ordering.ErrNoValidItems):
		return Reply{Kind: ReplyFunctionNoItems, EventType: voice.EventTypeFunctionCall, FunctionName: fc.Name, Err: err}
	case err != nil:
		logger.L(ctx).Error("Error creating order", zap.String("function", fc.Name), zap.Error(err))
		return Reply{Kind: ReplyFunctionFailed, EventType: voice.EventTypeFunctionCall, FunctionName: fc.Name, Err: err}
	}
	return Reply{Kind: ReplyFunctionOrdered, EventType: voice.EventTypeFunctionCall, FunctionName: fc.Name, OrderID: placed.ID}
}

func logSkipped(ctx context.Context, skipped []voice.SkippedItem) {
	for _, item := range skipped {
		logger.L(ctx).Warn("Missing item_id in order item",
			zap.Int("index", item.Index),
			zap.Any("item", item.Item))
	}
}
