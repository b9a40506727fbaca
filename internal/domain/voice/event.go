package voice

// EventType discriminates webhook payloads.
type EventType string

// Event types delivered by the voice platform.
const (
	EventTypeToolCalls       EventType = "tool-calls"
	EventTypeFunctionCall    EventType = "function-call"
	EventTypeEndOfCallReport EventType = "end-of-call-report"
)

// Tool and function names that place an order.
const (
	ToolPlaceOrder      = "place_order"
	FunctionOrderPlaced = "order_placed"
)

// IsOrderFunction reports whether a legacy function-call name places an order.
func IsOrderFunction(name string) bool {
	return name == FunctionOrderPlaced || name == ToolPlaceOrder
}

// Event is a normalized webhook payload.
type Event struct {
	Type EventType
	// CallID is the live call identifier, when the payload carries one.
	CallID string
	// ToolCalls is set for tool-calls events, one entry per invocation.
	ToolCalls []ToolCall
	// FunctionCall is set for legacy function-call events.
	FunctionCall *FunctionCall
}

// ToolCall is one tool invocation within a tool-calls event.
type ToolCall struct {
	// ID correlates the response slot to this invocation. Empty when absent.
	ID         string
	Name       string
	Parameters Parameters
}

// FunctionCall is the legacy single-call shape.
type FunctionCall struct {
	Name       string
	Parameters Parameters
}

// Parameters is the argument bundle of a tool or function call.
type Parameters struct {
	Items               []RawItem
	CustomerName        string
	SpecialInstructions string
}

// RawItem is an order line as sent by the voice assistant, before
// extraction. A nil RawItem stands for an entry that was not an object.
type RawItem map[string]any
