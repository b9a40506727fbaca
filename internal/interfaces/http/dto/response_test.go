package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/domain/voice"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewMenuResponse(t *testing.T) {
	resp := NewMenuResponse([]ordering.MenuItem{
		{ID: "V1", Name: "Latte", Price: decPtr("2.50"), CategoryID: strPtr("CAT")},
		{ID: "V2", Name: "Water", Description: strPtr("still")},
	})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":"V1","name":"Latte","description":null,"price":2.5,"category":"CAT"},
		{"id":"V2","name":"Water","description":"still","price":null,"category":null}
	]`, string(data))
}

func TestNewMenuResponse_Empty(t *testing.T) {
	data, err := json.Marshal(NewMenuResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestCreateOrderRequest_ToOrderRequest(t *testing.T) {
	req := CreateOrderRequest{
		Items: []OrderItemRequest{
			{CatalogObjectID: "V1"},
			{CatalogObjectID: "V2", Quantity: "3", Modifiers: []any{map[string]any{"catalog_object_id": "M1"}}},
			{CatalogObjectID: "V3", Modifiers: []any{}},
		},
		CustomerName: "Jane",
	}

	got := req.ToOrderRequest()

	require.Len(t, got.Items, 3)
	assert.Equal(t, "1", got.Items[0].Quantity)
	assert.Equal(t, "3", got.Items[1].Quantity)
	assert.Len(t, got.Items[1].Modifiers, 1)
	assert.Nil(t, got.Items[2].Modifiers)
	assert.Equal(t, "Jane", got.CustomerName)
}

func TestNewCreateOrderResponse(t *testing.T) {
	t.Run("with total", func(t *testing.T) {
		resp := NewCreateOrderResponse(&ordering.PlacedOrder{
			ID:    "O1",
			State: ordering.OrderStateDraft,
			Total: &ordering.Money{Amount: 1599},
		})
		data, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"success","order":{"order_id":"O1","state":"DRAFT","total_money":{"amount":1599,"currency":"USD"}}}`, string(data))
	})

	t.Run("without total", func(t *testing.T) {
		data, err := json.Marshal(NewCreateOrderResponse(&ordering.PlacedOrder{ID: "O1", State: ordering.OrderStateDraft}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"success","order":{"order_id":"O1","state":"DRAFT","total_money":null}}`, string(data))
	})
}

func TestNewRecentOrdersResponse(t *testing.T) {
	resp := NewRecentOrdersResponse([]ordering.OrderSummary{
		{
			OrderID:     "O1",
			State:       "OPEN",
			CreatedAt:   "2024-01-01T00:00:00Z",
			TotalAmount: decimal.RequireFromString("15.99"),
			Currency:    "USD",
			LineItems: []ordering.LineItemSummary{
				{Name: "Latte", Quantity: "2", CatalogObjectID: "V1", Price: decPtr("4.5")},
				{Name: "Unknown Item", Quantity: "0", CatalogObjectID: "N/A"},
			},
			ReferenceID: strPtr("Jane"),
		},
	})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "success",
		"count": 1,
		"orders": [{
			"order_id": "O1",
			"state": "OPEN",
			"created_at": "2024-01-01T00:00:00Z",
			"total_amount": 15.99,
			"currency": "USD",
			"line_items": [
				{"name":"Latte","quantity":"2","catalog_object_id":"V1","price":4.5},
				{"name":"Unknown Item","quantity":"0","catalog_object_id":"N/A"}
			],
			"reference_id": "Jane",
			"note": null
		}]
	}`, string(data))
}

func TestNewToolCallsResponse(t *testing.T) {
	results := []voice.ToolCallResult{
		voice.Confirmed(voice.ToolCall{ID: "a", Name: "place_order"}, "O1", "Great!"),
		voice.Failed(voice.ToolCall{ID: "b", Name: "place_order"}, ordering.ErrPlatformUnavailable),
		voice.Unhandled(voice.ToolCall{Name: "lookup"}),
	}

	data, err := json.Marshal(NewToolCallsResponse(results))
	require.NoError(t, err)
	assert.JSONEq(t, `{"responses":[
		{"toolCallId":"a","result":"Great!","error":null},
		{"toolCallId":"b","result":null,"error":"`+voice.OrderFailedApology+`"},
		{"toolCallId":null,"result":"Tool lookup received but not handled","error":null}
	]}`, string(data))
}

func TestWebhookAcknowledgments(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"no valid items", NewNoValidItemsResponse(), `{"error":"No valid items found in order","message":"` + voice.NoValidItemsApology + `"}`},
		{"function ordered", NewFunctionOrderedResponse("O1"), `{"status":"success","message":"Order processed successfully","order_id":"O1"}`},
		{"function no items", NewFunctionNoItemsResponse(), `{"status":"error","message":"No valid items in order"}`},
		{"function received", NewFunctionReceivedResponse("check_hours"), `{"status":"received","function":"check_hours"}`},
		{"function received without name", NewFunctionReceivedResponse(""), `{"status":"received","function":null}`},
		{"end of call", NewReceivedResponse(voice.EventTypeEndOfCallReport), `{"status":"received","type":"end-of-call-report"}`},
		{"missing type", NewReceivedResponse(""), `{"status":"received","type":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}
