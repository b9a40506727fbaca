package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appvoice "github.com/voicewaiter/backend/internal/application/voice"
	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/domain/voice"
	"github.com/voicewaiter/backend/internal/infrastructure/telemetry"
	"github.com/voicewaiter/backend/internal/interfaces/http/middleware"
)

func newWebhookEngine(orders *MockOrderManager) http.Handler {
	h := NewWebhookHandler(appvoice.NewWebhookService(orders, nil))
	return newTestEngine(http.MethodPost, "/vapi-webhook", h.Handle)
}

func postWebhook(engine http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/vapi-webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func itemsAre(ids ...string) any {
	return mock.MatchedBy(func(req ordering.OrderRequest) bool {
		if len(req.Items) != len(ids) {
			return false
		}
		for i, id := range ids {
			if req.Items[i].CatalogObjectID != id {
				return false
			}
		}
		return true
	})
}

func TestWebhookHandler_ToolCalls(t *testing.T) {
	orders := new(MockOrderManager)
	orders.On("PlaceOrder", mock.Anything, itemsAre("V1"), telemetry.OrderSourceToolCall).Return(&ordering.PlacedOrder{
		ID:    "ORDER_AB12CD34",
		State: ordering.OrderStateDraft,
		Total: &ordering.Money{Amount: 1599, Currency: "USD"},
	}, nil)

	w := postWebhook(newWebhookEngine(orders), `{
		"type": "tool-calls",
		"call": {"id": "call-1"},
		"toolCalls": [
			{"id": "tc-1", "function": {"name": "place_order", "arguments": {"items": [{"item_id": "V1", "quantity": 2}]}}},
			{"id": "tc-2", "function": {"name": "check_hours"}}
		]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"responses": [
		{
			"toolCallId": "tc-1",
			"result": "Great! I've placed your order. Your order number is AB12CD34. Your total comes to $15.99. Your order will be ready shortly. Is there anything else I can help you with?",
			"error": null
		},
		{"toolCallId": "tc-2", "result": "Tool check_hours received but not handled", "error": null}
	]}`, w.Body.String())
	orders.AssertExpectations(t)
}

func TestWebhookHandler_ToolCalls_FailureIsolatedToSlot(t *testing.T) {
	orders := new(MockOrderManager)
	orders.On("PlaceOrder", mock.Anything, itemsAre("BAD"), mock.Anything).
		Return(nil, fmt.Errorf("create order: %w", ordering.ErrPlatformRequestFailed))
	orders.On("PlaceOrder", mock.Anything, itemsAre("V2"), mock.Anything).
		Return(&ordering.PlacedOrder{ID: "XYZ98765", State: ordering.OrderStateDraft}, nil)

	w := postWebhook(newWebhookEngine(orders), `{
		"type": "tool-calls",
		"toolCallList": [
			{"id": "tc-1", "name": "place_order", "parameters": {"items": [{"item_id": "BAD"}]}},
			{"id": "tc-2", "name": "place_order", "parameters": {"items": [{"catalog_object_id": "V2"}]}}
		]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"responses": [
		{"toolCallId": "tc-1", "result": null, "error": %q},
		{"toolCallId": "tc-2", "result": "Great! I've placed your order. Your order number is XYZ98765. Your order will be ready shortly. Is there anything else I can help you with?", "error": null}
	]}`, voice.OrderFailedApology), w.Body.String())
}

func TestWebhookHandler_ToolCalls_NoValidItems(t *testing.T) {
	orders := new(MockOrderManager)
	orders.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).Return(nil, ordering.ErrNoValidItems)

	w := postWebhook(newWebhookEngine(orders), `{
		"type": "tool-calls",
		"toolCalls": [
			{"id": "tc-1", "name": "place_order", "parameters": {"items": [{"quantity": 1}]}},
			{"id": "tc-2", "name": "place_order", "parameters": {"items": [{"item_id": "V2"}]}}
		]
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"error": "No valid items found in order", "message": %q}`, voice.NoValidItemsApology), w.Body.String())
	orders.AssertNumberOfCalls(t, "PlaceOrder", 1)
}

func TestWebhookHandler_FunctionCall(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*MockOrderManager)
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name: "order placed",
			setup: func(m *MockOrderManager) {
				m.On("PlaceOrder", mock.Anything, itemsAre("V1"), telemetry.OrderSourceFunctionCall).
					Return(&ordering.PlacedOrder{ID: "O1", State: ordering.OrderStateDraft}, nil)
			},
			body:       `{"type": "function-call", "functionCall": {"name": "order_placed", "parameters": {"items": [{"item_id": "V1"}]}}}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"status": "success", "message": "Order processed successfully", "order_id": "O1"}`,
		},
		{
			name: "no valid items",
			setup: func(m *MockOrderManager) {
				m.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).Return(nil, ordering.ErrNoValidItems)
			},
			body:       `{"type": "function-call", "functionCall": {"name": "place_order", "parameters": {"items": []}}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status": "error", "message": "No valid items in order"}`,
		},
		{
			name:       "unhandled function",
			setup:      func(*MockOrderManager) {},
			body:       `{"type": "function-call", "functionCall": {"name": "lookup_hours"}}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"status": "received", "function": "lookup_hours"}`,
		},
		{
			name:       "missing function object",
			setup:      func(*MockOrderManager) {},
			body:       `{"type": "function-call"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"status": "received", "function": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrderManager)
			tt.setup(orders)

			w := postWebhook(newWebhookEngine(orders), tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			orders.AssertExpectations(t)
		})
	}
}

func TestWebhookHandler_FunctionCall_CreationFailure(t *testing.T) {
	orders := new(MockOrderManager)
	orders.On("PlaceOrder", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create order: %w", ordering.ErrPlatformUnavailable))

	w := postWebhook(newWebhookEngine(orders),
		`{"type": "function-call", "functionCall": {"name": "place_order", "parameters": {"items": [{"item_id": "V1"}]}}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error processing webhook")
	assert.NotContains(t, w.Body.String(), "unavailable")
}

func TestWebhookHandler_OtherEvents(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{"end of call report", `{"type": "end-of-call-report", "call": {"id": "c-1"}}`, `{"status": "received", "type": "end-of-call-report"}`},
		{"unknown type", `{"type": "status-update"}`, `{"status": "received", "type": "status-update"}`},
		{"missing type", `{"foo": "bar"}`, `{"status": "received", "type": null}`},
		{"message envelope", `{"message": {"type": "end-of-call-report"}}`, `{"status": "received", "type": "end-of-call-report"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrderManager)

			w := postWebhook(newWebhookEngine(orders), tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			orders.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestWebhookHandler_InvalidBody(t *testing.T) {
	for _, body := range []string{
		`not json`,
		`[1, 2]`,
		``,
		`{"type": "end-of-call-report"} not json at all`,
		`{"type": "end-of-call-report"}{"type": "tool-calls"}`,
	} {
		t.Run(body, func(t *testing.T) {
			w := postWebhook(newWebhookEngine(new(MockOrderManager)), body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Body.String(), "Error processing webhook")
		})
	}
}

func TestWebhookHandler_BodyTooLarge(t *testing.T) {
	h := NewWebhookHandler(appvoice.NewWebhookService(new(MockOrderManager), nil))
	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.BodyLimit(8))
	engine.POST("/vapi-webhook", h.Handle)

	// Unknown length skips the Content-Length check so the limit trips while reading.
	req := httptest.NewRequest(http.MethodPost, "/vapi-webhook", strings.NewReader(`{"type": "end-of-call-report"}`))
	req.ContentLength = -1
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_REQUEST_TOO_LARGE")
}
