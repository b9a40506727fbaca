package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/infrastructure/square"
)

func TestItemNames(t *testing.T) {
	objects := []ordering.CatalogObject{
		{ID: "I1", Type: ordering.CatalogObjectTypeItem, Item: &ordering.CatalogItem{Name: "Burger"}},
		{ID: "C1", Type: "CATEGORY"},
		{ID: "I2", Type: ordering.CatalogObjectTypeItem, Item: &ordering.CatalogItem{}},
	}

	assert.Equal(t, []string{"Burger", "Unknown Item"}, itemNames(objects))
	assert.Nil(t, itemNames(nil))
}

func newSquareStub(t *testing.T, ordersStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v2/catalog/list", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"objects": [
			{"type": "ITEM", "id": "I1", "item_data": {"name": "Burger"}},
			{"type": "ITEM", "id": "I2", "item_data": {"name": "Coke"}}
		]}`))
	})
	mux.HandleFunc("POST /v2/orders/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(ordersStatus)
		if ordersStatus == http.StatusOK {
			_, _ = w.Write([]byte(`{"orders": [{"id": "O1", "location_id": "LOC_1"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"errors": [{"category": "API_ERROR", "code": "INTERNAL_SERVER_ERROR"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckSquare(t *testing.T) {
	srv := newSquareStub(t, http.StatusOK)

	var buf bytes.Buffer
	err := checkSquare(context.Background(), &buf, &square.Config{
		AccessToken: "test-token-123456",
		LocationID:  "LOC_1",
		BaseURL:     srv.URL,
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Found 2 items")
	assert.Contains(t, out, "Burger")
	assert.Contains(t, out, "Found 1 recent orders")
	assert.NotContains(t, out, "test-token-123456")
}

func TestCheckSquare_OrdersFailureIsWarning(t *testing.T) {
	srv := newSquareStub(t, http.StatusInternalServerError)

	var buf bytes.Buffer
	err := checkSquare(context.Background(), &buf, &square.Config{
		AccessToken: "token",
		LocationID:  "LOC_1",
		BaseURL:     srv.URL,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Orders API:")
}

func TestCheckSquare_MissingCredentials(t *testing.T) {
	var buf bytes.Buffer
	err := checkSquare(context.Background(), &buf, &square.Config{LocationID: "LOC_1"})

	assert.ErrorIs(t, err, square.ErrConfigMissingAccessToken)
	assert.Contains(t, buf.String(), "Invalid configuration")
}

func TestCheckSquare_CatalogFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": [{"category": "AUTHENTICATION_ERROR", "code": "UNAUTHORIZED"}]}`))
	}))
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	err := checkSquare(context.Background(), &buf, &square.Config{
		AccessToken: "bad",
		LocationID:  "LOC_1",
		BaseURL:     srv.URL,
	})

	assert.ErrorIs(t, err, errChecksFailed)
	assert.Contains(t, buf.String(), "Catalog API error")
}
