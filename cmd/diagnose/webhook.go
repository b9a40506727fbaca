package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/voicewaiter/backend/internal/domain/voice"
	"github.com/voicewaiter/backend/internal/interfaces/http/dto"
	"github.com/voicewaiter/backend/internal/interfaces/http/middleware"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Post a mock place_order tool call to a running bridge",
	Long: `Fetches GET /menu from the bridge, suggests catalog variation IDs, then
posts a mock Vapi tool-calls event ordering one of each item and prints the
spoken confirmation.

Without --item the suggested burger and coke IDs are ordered.`,
	RunE: runWebhook,
}

var (
	webhookURL     string
	webhookItems   []string
	webhookSecret  string
	webhookTimeout time.Duration
)

// Mock payload constants.
const (
	mockToolCallID  = "test-tool-call-123"
	menuSampleCount = 5
	maxBodyBytes    = 1 << 20
)

func init() {
	webhookCmd.Flags().StringVar(&webhookURL, "url", "", "Bridge base URL (default: $NGROK_URL or http://localhost:8000)")
	webhookCmd.Flags().StringSliceVar(&webhookItems, "item", nil, "Catalog variation ID to order (repeatable)")
	webhookCmd.Flags().StringVar(&webhookSecret, "secret", "", "X-Vapi-Secret header value (default: $VAPI_WEBHOOK_SECRET)")
	webhookCmd.Flags().DurationVar(&webhookTimeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.AddCommand(webhookCmd)
}

func runWebhook(cmd *cobra.Command, args []string) error {
	base := firstNonEmpty(webhookURL, envOr("NGROK_URL", "http://localhost:8000"))
	checker := &webhookChecker{
		baseURL: strings.TrimRight(base, "/"),
		secret:  firstNonEmpty(webhookSecret, envOr("VAPI_WEBHOOK_SECRET", "")),
		client:  &http.Client{Timeout: webhookTimeout},
		out:     cmd.OutOrStdout(),
	}
	return checker.run(cmd.Context(), webhookItems)
}

type webhookChecker struct {
	baseURL string
	secret  string
	client  *http.Client
	out     io.Writer
}

func (wc *webhookChecker) run(ctx context.Context, itemIDs []string) error {
	header(wc.out, "Voice webhook")
	step(wc.out, "📍", "Endpoint: "+wc.baseURL+"/vapi-webhook")

	menu, err := wc.fetchMenu(ctx)
	if err != nil {
		warn(wc.out, fmt.Sprintf("Could not fetch menu items: %v", err))
	} else {
		success(wc.out, fmt.Sprintf("Found %d menu items", len(menu)))
		for i, item := range menu {
			if i == menuSampleCount {
				break
			}
			step(wc.out, "-", fmt.Sprintf("%s: %s", item.Name, item.ID))
		}
	}

	if len(itemIDs) == 0 {
		itemIDs = suggestItemIDs(menu)
		if len(itemIDs) == 0 {
			fail(wc.out, "No item IDs given and none could be suggested; pass --item")
			return errChecksFailed
		}
		step(wc.out, "💡", "Using suggested IDs: "+strings.Join(itemIDs, ", "))
	}

	payload, err := json.MarshalIndent(mockToolCall(itemIDs), "", "  ")
	if err != nil {
		return err
	}
	step(wc.out, "📤", "Sending mock tool call:")
	fmt.Fprintln(wc.out, string(payload))

	status, body, err := wc.post(ctx, payload)
	if err != nil {
		fail(wc.out, fmt.Sprintf("Could not reach %s: %v", wc.baseURL, err))
		return errChecksFailed
	}
	step(wc.out, "📥", fmt.Sprintf("Response status: %d", status))
	fmt.Fprintln(wc.out, string(body))

	if status != http.StatusOK {
		fail(wc.out, fmt.Sprintf("Server returned status %d; check the server logs", status))
		return errChecksFailed
	}

	results, errs, err := spokenResults(body)
	if err != nil {
		warn(wc.out, "Response is not a tool-calls answer")
		return errChecksFailed
	}
	for _, r := range results {
		step(wc.out, "💬", "Confirmation: "+r)
	}
	for _, e := range errs {
		fail(wc.out, "Error: "+e)
	}
	if len(errs) > 0 {
		return errChecksFailed
	}
	success(wc.out, "Webhook connection is working! Check GET /orders/recent for the new order.")
	return nil
}

func (wc *webhookChecker) fetchMenu(ctx context.Context) ([]dto.MenuItemResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wc.baseURL+"/menu", nil)
	if err != nil {
		return nil, err
	}
	resp, err := wc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /menu returned %d", resp.StatusCode)
	}
	var menu []dto.MenuItemResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&menu); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return menu, nil
}

func (wc *webhookChecker) post(ctx context.Context, payload []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, wc.baseURL+"/vapi-webhook", bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if wc.secret != "" {
		req.Header.Set(middleware.VapiSecretHeader, wc.secret)
	}

	resp, err := wc.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// suggestItemIDs picks the first burger and the first coke or cola from the
// menu, falling back to the first row when neither drink is listed.
func suggestItemIDs(menu []dto.MenuItemResponse) []string {
	var burger, drink string
	for _, item := range menu {
		name := strings.ToLower(item.Name)
		if burger == "" && strings.Contains(name, "burger") {
			burger = item.ID
		}
		if drink == "" && (strings.Contains(name, "coke") || strings.Contains(name, "cola")) {
			drink = item.ID
		}
	}
	if drink == "" && len(menu) > 0 {
		drink = menu[0].ID
	}

	var ids []string
	for _, id := range []string{burger, drink} {
		if id != "" && (len(ids) == 0 || ids[0] != id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// mockToolCall builds a tool-calls event ordering one of each item.
func mockToolCall(itemIDs []string) map[string]any {
	items := make([]map[string]any, 0, len(itemIDs))
	for _, id := range itemIDs {
		items = append(items, map[string]any{
			"item_id":   id,
			"quantity":  "1",
			"modifiers": []any{},
		})
	}
	return map[string]any{
		"type": string(voice.EventTypeToolCalls),
		"toolCalls": []any{
			map[string]any{
				"id": mockToolCallID,
				"function": map[string]any{
					"name":       voice.ToolPlaceOrder,
					"parameters": map[string]any{"items": items},
				},
			},
		},
	}
}

// spokenResults splits a tool-calls answer into its result and error texts.
func spokenResults(body []byte) (results, errs []string, err error) {
	var resp dto.ToolCallsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, err
	}
	if resp.Responses == nil {
		return nil, nil, fmt.Errorf("missing responses")
	}
	for _, r := range resp.Responses {
		if r.Result != nil {
			results = append(results, *r.Result)
		}
		if r.Error != nil {
			errs = append(errs, *r.Error)
		}
	}
	return results, errs, nil
}
