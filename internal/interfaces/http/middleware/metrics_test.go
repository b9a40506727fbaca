package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func TestHTTPMetrics_NilMeter(t *testing.T) {
	router := gin.New()
	router.Use(HTTPMetrics(nil, zap.NewNop()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPMetrics_RecordsRequests(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	router := gin.New()
	router.Use(HTTPMetrics(provider.Meter("test"), zap.NewNop()))
	router.GET("/menu", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/menu", nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[attribute.Distinct]int64{}
	var histogramSeen bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch m.Name {
			case "voicewaiter_http_requests_total":
				sum := m.Data.(metricdata.Sum[int64])
				for _, dp := range sum.DataPoints {
					counts[dp.Attributes.Equivalent()] = dp.Value
				}
			case "voicewaiter_http_request_duration_seconds":
				histogramSeen = true
			}
		}
	}

	menu := attribute.NewSet(
		attribute.String("method", "GET"),
		attribute.String("route", "/menu"),
		attribute.Int("status_code", http.StatusInternalServerError),
	)
	unknown := attribute.NewSet(
		attribute.String("method", "GET"),
		attribute.String("route", "unknown"),
		attribute.Int("status_code", http.StatusNotFound),
	)
	assert.Equal(t, int64(2), counts[menu.Equivalent()])
	assert.Equal(t, int64(1), counts[unknown.Equivalent()])
	assert.True(t, histogramSeen)
}
