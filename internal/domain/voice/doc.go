// Package voice contains the Voice bounded context: events delivered by the
// voice-assistant platform (Vapi) during a live call.
//
// Payloads are loosely typed. ParseEvent is the single place where field
// presence and fallbacks are resolved; everything downstream works on the
// typed Event, ToolCall and Parameters values it produces.
package voice
