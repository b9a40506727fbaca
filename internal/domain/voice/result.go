package voice

// ResultKind tags the outcome of one tool call.
type ResultKind int

const (
	// ResultConfirmed means an order was placed; Message is the spoken confirmation.
	ResultConfirmed ResultKind = iota + 1
	// ResultFailed means order creation failed; Message is the spoken apology.
	ResultFailed
	// ResultUnhandled means the tool name is not one this service handles.
	ResultUnhandled
	// ResultRejected means the order carried no valid items. A rejected
	// result ends the batch.
	ResultRejected
)

// String returns the outcome label used in logs and metrics.
func (k ResultKind) String() string {
	switch k {
	case ResultConfirmed:
		return "confirmed"
	case ResultFailed:
		return "failed"
	case ResultUnhandled:
		return "unhandled"
	case ResultRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ToolCallResult is the per-invocation result accumulated while handling a
// tool-calls batch. Err holds the underlying cause for failed and rejected
// results; it is logged, never spoken.
type ToolCallResult struct {
	ToolCallID string
	ToolName   string
	Kind       ResultKind
	Message    string
	OrderID    string
	Err        error
}

// Confirmed builds a result for a placed order.
func Confirmed(call ToolCall, orderID, message string) ToolCallResult {
	return ToolCallResult{ToolCallID: call.ID, ToolName: call.Name, Kind: ResultConfirmed, Message: message, OrderID: orderID}
}

// Failed builds a result for an order that could not be created.
func Failed(call ToolCall, err error) ToolCallResult {
	return ToolCallResult{ToolCallID: call.ID, ToolName: call.Name, Kind: ResultFailed, Message: OrderFailedApology, Err: err}
}

// Unhandled builds the acknowledgment for an unrecognized tool.
func Unhandled(call ToolCall) ToolCallResult {
	return ToolCallResult{ToolCallID: call.ID, ToolName: call.Name, Kind: ResultUnhandled, Message: UnhandledToolMessage(call.Name)}
}

// Rejected builds a result for an order without valid items.
func Rejected(call ToolCall, err error) ToolCallResult {
	return ToolCallResult{ToolCallID: call.ID, ToolName: call.Name, Kind: ResultRejected, Message: NoValidItemsApology, Err: err}
}

// Result returns the text for the response "result" slot, or nil.
func (r ToolCallResult) Result() *string {
	if r.Kind == ResultConfirmed || r.Kind == ResultUnhandled {
		msg := r.Message
		return &msg
	}
	return nil
}

// ErrorText returns the text for the response "error" slot, or nil.
func (r ToolCallResult) ErrorText() *string {
	if r.Kind == ResultFailed || r.Kind == ResultRejected {
		msg := r.Message
		return &msg
	}
	return nil
}
