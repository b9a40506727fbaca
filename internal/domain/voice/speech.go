package voice

import (
	"fmt"
	"strings"

	"github.com/voicewaiter/backend/internal/domain/ordering"
)

// Spoken strings returned to the voice assistant.
const (
	OrderFailedApology  = "I apologize, but there was an issue processing your order. Please try again or speak with a staff member for assistance."
	NoValidItemsApology = "I apologize, but I couldn't process your order. Please try again or speak with a staff member."
	closingLine         = " Your order will be ready shortly. Is there anything else I can help you with?"
)

const (
	orderNumberLength = 8
	unknownOrderID    = "N/A"
	unknownToolName   = "unknown"
)

// OrderNumber is the short order number read back to the caller: the last
// eight characters of the platform order id.
func OrderNumber(orderID string) string {
	if orderID == "" {
		orderID = unknownOrderID
	}
	r := []rune(orderID)
	if len(r) <= orderNumberLength {
		return orderID
	}
	return string(r[len(r)-orderNumberLength:])
}

// ConfirmationMessage renders the spoken confirmation for a placed order.
// The total sentence is included only for a positive total.
func ConfirmationMessage(order ordering.PlacedOrder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Great! I've placed your order. Your order number is %s.", OrderNumber(order.ID))
	if order.Total != nil && order.Total.Amount > 0 {
		fmt.Fprintf(&b, " Your total comes to $%s.", order.Total.Decimal().StringFixed(2))
	}
	b.WriteString(closingLine)
	return b.String()
}

// UnhandledToolMessage acknowledges a tool this service does not implement.
func UnhandledToolMessage(name string) string {
	if name == "" {
		name = unknownToolName
	}
	return fmt.Sprintf("Tool %s received but not handled", name)
}
