package dto

import "github.com/voicewaiter/backend/internal/domain/voice"

// ToolCallsResponse answers a tool-calls event
type ToolCallsResponse struct {
	Responses []ToolCallResponse `json:"responses"`
}

// ToolCallResponse is one slot of a tool-calls answer. Exactly one of Result
// and Error is non-null.
type ToolCallResponse struct {
	ToolCallID *string `json:"toolCallId"`
	Result     *string `json:"result"`
	Error      *string `json:"error"`
}

// NewToolCallsResponse renders results in order. An empty call id encodes as null.
func NewToolCallsResponse(results []voice.ToolCallResult) ToolCallsResponse {
	out := make([]ToolCallResponse, 0, len(results))
	for _, r := range results {
		out = append(out, ToolCallResponse{
			ToolCallID: nullable(r.ToolCallID),
			Result:     r.Result(),
			Error:      r.ErrorText(),
		})
	}
	return ToolCallsResponse{Responses: out}
}

// NoValidItemsResponse rejects a tool-calls batch with an unusable order
type NoValidItemsResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewNoValidItemsResponse builds the rejection body with the spoken apology
func NewNoValidItemsResponse() NoValidItemsResponse {
	return NoValidItemsResponse{
		Error:   "No valid items found in order",
		Message: voice.NoValidItemsApology,
	}
}

// FunctionStatusResponse answers a legacy function-call event
type FunctionStatusResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message,omitempty"`
	OrderID  *string `json:"order_id,omitempty"`
	Function *string `json:"function,omitempty"`
}

// NewFunctionOrderedResponse acknowledges an order placed by a function call
func NewFunctionOrderedResponse(orderID string) FunctionStatusResponse {
	return FunctionStatusResponse{
		Status:  "success",
		Message: "Order processed successfully",
		OrderID: nullable(orderID),
	}
}

// NewFunctionNoItemsResponse rejects a function call without valid items
func NewFunctionNoItemsResponse() FunctionStatusResponse {
	return FunctionStatusResponse{
		Status:  "error",
		Message: "No valid items in order",
	}
}

// FunctionReceivedResponse acknowledges an unhandled function call.
// Function is null when the payload named none.
type FunctionReceivedResponse struct {
	Status   string  `json:"status"`
	Function *string `json:"function"`
}

// NewFunctionReceivedResponse builds the unhandled-function acknowledgment
func NewFunctionReceivedResponse(name string) FunctionReceivedResponse {
	return FunctionReceivedResponse{Status: "received", Function: nullable(name)}
}

// ReceivedResponse acknowledges any other event type.
// Type is null when the payload carried none.
type ReceivedResponse struct {
	Status string  `json:"status"`
	Type   *string `json:"type"`
}

// NewReceivedResponse builds the generic acknowledgment
func NewReceivedResponse(eventType voice.EventType) ReceivedResponse {
	return ReceivedResponse{Status: "received", Type: nullable(string(eventType))}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
