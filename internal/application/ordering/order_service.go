package ordering

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/infrastructure/logger"
	"github.com/voicewaiter/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Recent-order listing bounds.
const (
	DefaultRecentOrdersLimit = 3
	MaxRecentOrdersLimit     = 500
)

const idempotencyKeyPrefix = "voice-order-"

// OrderMetrics records placed orders.
type OrderMetrics interface {
	RecordOrderCreated(ctx context.Context, source string, amount int64, currency string)
}

type noopOrderMetrics struct{}

func (noopOrderMetrics) RecordOrderCreated(context.Context, string, int64, string) {}

// OrderService creates and lists orders through the platform gateway.
type OrderService struct {
	gateway ordering.OrderGateway
	metrics OrderMetrics
	newKey  func() string
}

// OrderServiceOption configures an OrderService.
type OrderServiceOption func(*OrderService)

// WithOrderMetrics sets the recorder for placed orders.
func WithOrderMetrics(m OrderMetrics) OrderServiceOption {
	return func(s *OrderService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithIdempotencyKeyFunc replaces the idempotency key generator.
func WithIdempotencyKeyFunc(fn func() string) OrderServiceOption {
	return func(s *OrderService) {
		if fn != nil {
			s.newKey = fn
		}
	}
}

// NewOrderService creates a new OrderService
func NewOrderService(gateway ordering.OrderGateway, opts ...OrderServiceOption) *OrderService {
	s := &OrderService{
		gateway: gateway,
		metrics: noopOrderMetrics{},
		newKey:  NewIdempotencyKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewIdempotencyKey returns "voice-order-" followed by 8 random bytes in hex.
// Bytes 6 and 8 of a v4 UUID carry the version and variant bits, so only
// the fully random bytes are used.
func NewIdempotencyKey() string {
	id := uuid.New()
	random := make([]byte, 0, 8)
	random = append(random, id[0:6]...)
	random = append(random, id[9:11]...)
	return idempotencyKeyPrefix + hex.EncodeToString(random)
}

// PlaceOrder validates req and creates a draft order. source labels the
// entry point (tool call, legacy function call or direct API) for metrics.
// Validation failures are returned unwrapped so callers can match them.
func (s *OrderService) PlaceOrder(ctx context.Context, req ordering.OrderRequest, source string) (*ordering.PlacedOrder, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "order", "PlaceOrder",
		telemetry.WithAttribute(telemetry.SpanAttrItemCount, len(req.Items)))
	defer span.End()

	if err := req.Validate(); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	cmd := ordering.CreateOrderCommand{
		IdempotencyKey: s.newKey(),
		LineItems:      req.Items,
		ReferenceID:    req.CustomerName,
		Note:           req.SpecialInstructions,
		State:          ordering.OrderStateDraft,
	}

	placed, err := s.gateway.CreateOrder(ctx, cmd)
	if err != nil {
		telemetry.RecordError(span, err)
		logger.L(ctx).Error("Failed to create order",
			zap.String("idempotency_key", cmd.IdempotencyKey),
			zap.Int("line_items", len(cmd.LineItems)),
			zap.Error(err))
		return nil, fmt.Errorf("create order: %w", err)
	}

	var amount int64
	currency := ordering.DefaultCurrency
	if placed.Total != nil {
		amount = placed.Total.Amount
		currency = placed.Total.CurrencyOrDefault()
	}
	s.metrics.RecordOrderCreated(ctx, source, amount, currency)

	telemetry.SetAttributes(span, telemetry.SpanAttrOrderID, placed.ID)
	logger.L(ctx).Info("Order placed",
		zap.String("order_id", placed.ID),
		zap.String("state", string(placed.State)),
		zap.String("source", source),
		zap.Int64("total_amount", amount))
	return placed, nil
}

// RecentOrders returns summaries of the most recently created orders, newest
// first. A non-positive limit means DefaultRecentOrdersLimit; the result never
// holds more than limit entries even if the platform returns more.
func (s *OrderService) RecentOrders(ctx context.Context, limit int) ([]ordering.OrderSummary, error) {
	if limit <= 0 {
		limit = DefaultRecentOrdersLimit
	}
	if limit > MaxRecentOrdersLimit {
		limit = MaxRecentOrdersLimit
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "order", "RecentOrders",
		telemetry.WithAttribute("orders.limit", limit))
	defer span.End()

	orders, err := s.gateway.SearchOrders(ctx, ordering.OrderSearch{
		States: ordering.RecentOrderStates,
		Limit:  limit,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		logger.L(ctx).Error("Failed to search orders", zap.Error(err))
		return nil, fmt.Errorf("search orders: %w", err)
	}

	if len(orders) > limit {
		orders = orders[:limit]
	}
	summaries := make([]ordering.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, ordering.Summarize(o))
	}
	return summaries, nil
}
