package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voicewaiter/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

func newFakeSquare(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v2/catalog/list", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"objects": [{
			"type": "ITEM", "id": "ITEM_1",
			"item_data": {"name": "Burger", "variations": [
				{"type": "ITEM_VARIATION", "id": "VAR_1", "item_variation_data": {"price_money": {"amount": 1599, "currency": "USD"}}}
			]}
		}]}`))
	})
	mux.HandleFunc("POST /v2/orders", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "LOC_1", body["order"].(map[string]any)["location_id"])
		_, _ = w.Write([]byte(`{"order": {"id": "ORDER_AB12CD34", "state": "DRAFT", "total_money": {"amount": 1599, "currency": "USD"}}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestConfig(squareURL string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "voicewaiter", Env: "test", Port: "0"},
		Square: config.SquareConfig{
			AccessToken: "token",
			LocationID:  "LOC_1",
			Environment: "sandbox",
			BaseURL:     squareURL,
			Timeout:     5 * time.Second,
		},
		Vapi:    config.VapiConfig{APIKey: "vapi", WebhookSecret: "s3cret"},
		HTTP:    config.HTTPConfig{MaxBodySize: 1 << 20},
		Swagger: config.SwaggerConfig{Enabled: true},
		Telemetry: config.TelemetryConfig{
			ServiceName:      "voicewaiter",
			ProfilingEnabled: true,
		},
	}
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	a, err := newApp(newTestConfig(newFakeSquare(t).URL), zap.NewNop(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	return a
}

func TestSquareConfig(t *testing.T) {
	cfg := squareConfig(config.SquareConfig{
		AccessToken: "token",
		LocationID:  "LOC",
		Environment: "production",
		APIVersion:  "2025-01-23",
		Timeout:     45 * time.Second,
	})

	assert.Equal(t, "token", cfg.AccessToken)
	assert.Equal(t, "LOC", cfg.LocationID)
	assert.Equal(t, "production", string(cfg.Environment))
	assert.Equal(t, 45, cfg.TimeoutSeconds)
}

func TestApp_Routes(t *testing.T) {
	a := newTestApp(t)

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		a.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","service":"Voice AI Restaurant Agent"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("menu", func(t *testing.T) {
		w := httptest.NewRecorder()
		a.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":"VAR_1","name":"Burger","description":null,"price":15.99,"category":null}]`, w.Body.String())
	})

	t.Run("webhook requires secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/vapi-webhook", strings.NewReader(`{"type":"status-update"}`))
		w := httptest.NewRecorder()
		a.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("webhook places order", func(t *testing.T) {
		body := `{"message": {"type": "tool-calls", "toolCalls": [
			{"id": "tc-1", "function": {"name": "place_order", "arguments": "{\"items\": [{\"item_id\": \"VAR_1\"}]}"}}
		]}}`
		req := httptest.NewRequest(http.MethodPost, "/vapi-webhook", strings.NewReader(body))
		req.Header.Set("X-Vapi-Secret", "s3cret")
		w := httptest.NewRecorder()
		a.engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Responses []struct {
				ToolCallID string  `json:"toolCallId"`
				Result     string  `json:"result"`
				Error      *string `json:"error"`
			} `json:"responses"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Responses, 1)
		assert.Equal(t, "tc-1", resp.Responses[0].ToolCallID)
		assert.Contains(t, resp.Responses[0].Result, "Your order number is AB12CD34.")
		assert.Contains(t, resp.Responses[0].Result, "$15.99")
		assert.Nil(t, resp.Responses[0].Error)
	})

	t.Run("direct order", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(`{"items": [{"catalog_object_id": "VAR_1"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"order_id":"ORDER_AB12CD34"`)
	})

	t.Run("swagger document", func(t *testing.T) {
		w := httptest.NewRecorder()
		a.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var doc struct {
			Info  struct{ Title string } `json:"info"`
			Paths map[string]any         `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "Voice AI Restaurant Agent API", doc.Info.Title)
		for _, path := range []string{"/", "/menu", "/order", "/orders/recent", "/vapi-webhook"} {
			assert.Contains(t, doc.Paths, path)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		a.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApp_SwaggerDisabled(t *testing.T) {
	cfg := newTestConfig(newFakeSquare(t).URL)
	cfg.Swagger.Enabled = false
	a, err := newApp(cfg, zap.NewNop(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "API documentation is not available")
}
