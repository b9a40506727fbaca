package voice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicewaiter/backend/internal/domain/ordering"
)

func TestOrderNumber(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"XYZ99AB12CD34", "AB12CD34"},
		{"SHORT", "SHORT"},
		{"EXACTLY8", "EXACTLY8"},
		{"", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderNumber(tt.id))
		})
	}
}

func TestConfirmationMessage_WithTotal(t *testing.T) {
	msg := ConfirmationMessage(ordering.PlacedOrder{
		ID:    "XYZ99AB12CD34",
		Total: &ordering.Money{Amount: 1599, Currency: "USD"},
	})

	assert.Equal(t,
		"Great! I've placed your order. Your order number is AB12CD34. Your total comes to $15.99. Your order will be ready shortly. Is there anything else I can help you with?",
		msg)
}

func TestConfirmationMessage_WithoutTotal(t *testing.T) {
	for _, total := range []*ordering.Money{nil, {Amount: 0, Currency: "USD"}} {
		msg := ConfirmationMessage(ordering.PlacedOrder{ID: "XYZ99AB12CD34", Total: total})
		assert.Equal(t,
			"Great! I've placed your order. Your order number is AB12CD34. Your order will be ready shortly. Is there anything else I can help you with?",
			msg)
		assert.NotContains(t, msg, "total")
	}
}

func TestConfirmationMessage_WholeDollars(t *testing.T) {
	msg := ConfirmationMessage(ordering.PlacedOrder{ID: "O1", Total: &ordering.Money{Amount: 1200}})
	assert.Contains(t, msg, "Your total comes to $12.00.")
}

func TestUnhandledToolMessage(t *testing.T) {
	assert.Equal(t, "Tool check_hours received but not handled", UnhandledToolMessage("check_hours"))
	assert.Equal(t, "Tool unknown received but not handled", UnhandledToolMessage(""))
}

// ---------------------------------------------------------------------------
// ToolCallResult Tests
// ---------------------------------------------------------------------------

func TestToolCallResult_Slots(t *testing.T) {
	call := ToolCall{ID: "tc-1", Name: ToolPlaceOrder}
	cause := errors.New("boom")

	confirmed := Confirmed(call, "ORDER_1", "ok")
	require.NotNil(t, confirmed.Result())
	assert.Equal(t, "ok", *confirmed.Result())
	assert.Nil(t, confirmed.ErrorText())
	assert.Equal(t, "confirmed", confirmed.Kind.String())
	assert.Equal(t, "tc-1", confirmed.ToolCallID)

	failed := Failed(call, cause)
	assert.Nil(t, failed.Result())
	require.NotNil(t, failed.ErrorText())
	assert.Equal(t, OrderFailedApology, *failed.ErrorText())
	assert.Equal(t, cause, failed.Err)

	unhandled := Unhandled(ToolCall{ID: "tc-2", Name: "check_hours"})
	require.NotNil(t, unhandled.Result())
	assert.Equal(t, "Tool check_hours received but not handled", *unhandled.Result())
	assert.Nil(t, unhandled.ErrorText())

	rejected := Rejected(call, ordering.ErrNoValidItems)
	assert.Nil(t, rejected.Result())
	assert.Equal(t, NoValidItemsApology, *rejected.ErrorText())
	assert.Equal(t, "rejected", rejected.Kind.String())
	assert.Equal(t, "unknown", ResultKind(0).String())
}
