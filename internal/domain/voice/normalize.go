package voice

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidPayload is returned when a webhook body is not a JSON object.
var ErrInvalidPayload = errors.New("voice: webhook payload is not a JSON object")

// Field precedence tables. For each concept the keys are tried in order and
// the first one holding a usable value wins.
var (
	// tool invocation list; a singular "toolCall" object is the last resort
	toolCallListKeys = []string{"toolCalls", "toolCallList"}
	// correlation id echoed back in each response slot
	toolCallIDKeys = []string{"id", "toolCallId"}
	// argument bundle; "arguments" may also arrive as a JSON-encoded string
	parameterKeys = []string{"parameters", "arguments"}
	// catalog identifier of an order line
	itemIDKeys = []string{"item_id", "catalog_object_id"}
)

const (
	keyType                = "type"
	keyMessage             = "message"
	keyCall                = "call"
	keyID                  = "id"
	keyToolCall            = "toolCall"
	keyFunctionCall        = "functionCall"
	keyFunction            = "function"
	keyName                = "name"
	keyItems               = "items"
	keyQuantity            = "quantity"
	keyModifiers           = "modifiers"
	keyCustomerName        = "customer_name"
	keySpecialInstructions = "special_instructions"
)

// ParseEvent decodes a webhook body and normalizes it into an Event.
// Numbers are kept as json.Number so quantities keep their literal text.
func ParseEvent(body []byte) (*Event, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	return NormalizeEvent(obj), nil
}

// NormalizeEvent resolves the loosely typed payload into an Event.
//
// Resolution rules:
//   - type: top-level "type"; when absent and "message" is an object with a
//     "type", the event is read from "message" (server-message envelope)
//   - tool calls: toolCalls → toolCallList → [toolCall]
//   - tool name/parameters: from "function" when it is an object, else top-level
//   - tool call id: id → toolCallId
//   - parameters: parameters → arguments
//
// Unknown or missing fields become zero values; nothing here fails.
func NormalizeEvent(payload map[string]any) *Event {
	payload = unwrapEnvelope(payload)

	ev := &Event{
		Type:   EventType(stringValue(payload[keyType])),
		CallID: stringValue(objectValue(payload[keyCall])[keyID]),
	}
	switch ev.Type {
	case EventTypeToolCalls:
		ev.ToolCalls = toolCalls(payload)
	case EventTypeFunctionCall:
		ev.FunctionCall = functionCall(payload)
	}
	return ev
}

func unwrapEnvelope(payload map[string]any) map[string]any {
	if stringValue(payload[keyType]) != "" {
		return payload
	}
	msg := objectValue(payload[keyMessage])
	if stringValue(msg[keyType]) == "" {
		return payload
	}
	return msg
}

func toolCalls(payload map[string]any) []ToolCall {
	var list []any
	for _, key := range toolCallListKeys {
		if l, ok := payload[key].([]any); ok && len(l) > 0 {
			list = l
			break
		}
	}
	if len(list) == 0 {
		if single := objectValue(payload[keyToolCall]); len(single) > 0 {
			list = []any{single}
		}
	}

	calls := make([]ToolCall, 0, len(list))
	for _, entry := range list {
		calls = append(calls, toolCall(objectValue(entry)))
	}
	return calls
}

func toolCall(obj map[string]any) ToolCall {
	call := ToolCall{ID: firstString(obj, toolCallIDKeys)}
	if fn, ok := obj[keyFunction].(map[string]any); ok {
		call.Name = stringValue(fn[keyName])
		call.Parameters = parameters(fn)
		return call
	}
	call.Name = stringValue(obj[keyName])
	call.Parameters = parameters(obj)
	return call
}

func functionCall(payload map[string]any) *FunctionCall {
	obj := objectValue(payload[keyFunctionCall])
	return &FunctionCall{
		Name:       stringValue(obj[keyName]),
		Parameters: parameters(obj),
	}
}

func parameters(container map[string]any) Parameters {
	bundle := parameterBundle(container)
	p := Parameters{
		CustomerName:        stringValue(bundle[keyCustomerName]),
		SpecialInstructions: stringValue(bundle[keySpecialInstructions]),
	}
	if items, ok := bundle[keyItems].([]any); ok {
		p.Items = make([]RawItem, 0, len(items))
		for _, item := range items {
			p.Items = append(p.Items, RawItem(objectValue(item)))
		}
	}
	return p
}

func parameterBundle(container map[string]any) map[string]any {
	for _, key := range parameterKeys {
		switch v := container[key].(type) {
		case map[string]any:
			if len(v) > 0 {
				return v
			}
		case string:
			if obj, err := decodeObject([]byte(v)); err == nil && len(obj) > 0 {
				return obj
			}
		}
	}
	return nil
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidPayload)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrInvalidPayload
	}
	return obj, nil
}

// objectValue returns v as an object, or nil when it is not one.
func objectValue(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

// stringValue returns strings as-is and numbers in their literal form.
// Anything else is treated as absent.
func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

func firstString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s := stringValue(obj[key]); s != "" {
			return s
		}
	}
	return ""
}
