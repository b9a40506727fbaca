package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Order sources recorded on voicewaiter_orders_created_total.
const (
	OrderSourceToolCall     = "tool_call"
	OrderSourceFunctionCall = "function_call"
	OrderSourceDirect       = "direct"
)

// Request outcomes recorded on the Square duration histogram.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Label values taken from webhook payloads are bucketed: anything outside
// these sets is recorded as labelOther so a caller cannot mint new series.
const (
	labelUnknown = "unknown"
	labelOther   = "other"
)

var knownEventTypes = map[string]struct{}{
	"tool-calls":          {},
	"function-call":       {},
	"end-of-call-report":  {},
	"status-update":       {},
	"conversation-update": {},
	"transcript":          {},
	"speech-update":       {},
	"hang":                {},
	"assistant-request":   {},
	"user-interrupted":    {},
}

var knownTools = map[string]struct{}{
	"place_order": {},
}

func boundedLabel(value string, known map[string]struct{}) string {
	if value == "" {
		return labelUnknown
	}
	if _, ok := known[value]; ok {
		return value
	}
	return labelOther
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// VoiceMetrics records webhook, tool-call, order and upstream metrics.
type VoiceMetrics struct {
	webhookEvents   *Counter
	toolCalls       *Counter
	ordersCreated   *Counter
	orderAmount     *Counter
	requestDuration *Histogram
}

// NewVoiceMetrics creates the service instruments on the given meter.
func NewVoiceMetrics(meter metric.Meter) (*VoiceMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	vm := &VoiceMetrics{}
	var err error

	if vm.webhookEvents, err = NewCounter(meter,
		"voicewaiter_webhook_events_total",
		"Total number of webhook events received, by event type",
		"{events}",
	); err != nil {
		return nil, err
	}
	if vm.toolCalls, err = NewCounter(meter,
		"voicewaiter_tool_calls_total",
		"Total number of tool calls handled, by tool and outcome",
		"{calls}",
	); err != nil {
		return nil, err
	}
	if vm.ordersCreated, err = NewCounter(meter,
		"voicewaiter_orders_created_total",
		"Total number of orders created, by source",
		"{orders}",
	); err != nil {
		return nil, err
	}
	if vm.orderAmount, err = NewCounter(meter,
		"voicewaiter_order_amount_total",
		"Total order amount in minor currency units",
		"{cents}",
	); err != nil {
		return nil, err
	}
	if vm.requestDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "voicewaiter_square_request_duration_seconds",
		Description: "Duration of Square API requests",
		Unit:        "s",
		Boundaries:  UpstreamDurationBuckets,
	}); err != nil {
		return nil, err
	}

	return vm, nil
}

// RecordWebhookEvent counts one received webhook event.
func (vm *VoiceMetrics) RecordWebhookEvent(ctx context.Context, eventType string) {
	vm.webhookEvents.Inc(ctx, AttrEventType.String(boundedLabel(eventType, knownEventTypes)))
}

// RecordToolCall counts one handled tool call.
func (vm *VoiceMetrics) RecordToolCall(ctx context.Context, tool, outcome string) {
	vm.toolCalls.Inc(ctx, AttrTool.String(boundedLabel(tool, knownTools)), AttrOutcome.String(outcome))
}

// RecordOrderCreated counts a created order and adds its total when known.
func (vm *VoiceMetrics) RecordOrderCreated(ctx context.Context, source string, amount int64, currency string) {
	vm.ordersCreated.Inc(ctx, AttrSource.String(source))
	if amount > 0 {
		vm.orderAmount.Add(ctx, amount, AttrCurrency.String(currency))
	}
}

// ObserveRequest records the duration of one Square API call.
func (vm *VoiceMetrics) ObserveRequest(ctx context.Context, operation string, duration time.Duration, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	vm.requestDuration.RecordDuration(ctx, duration,
		AttrOperation.String(operation),
		AttrOutcome.String(outcome),
	)
}
