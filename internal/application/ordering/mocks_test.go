package ordering

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/voicewaiter/backend/internal/domain/ordering"
)

// MockCatalogReader is a mock implementation of ordering.CatalogReader
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) ListCatalog(ctx context.Context) ([]ordering.CatalogObject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.CatalogObject), args.Error(1)
}

// MockOrderGateway is a mock implementation of ordering.OrderGateway
type MockOrderGateway struct {
	mock.Mock
}

func (m *MockOrderGateway) CreateOrder(ctx context.Context, cmd ordering.CreateOrderCommand) (*ordering.PlacedOrder, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.PlacedOrder), args.Error(1)
}

func (m *MockOrderGateway) SearchOrders(ctx context.Context, search ordering.OrderSearch) ([]ordering.Order, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

// MockOrderMetrics is a mock implementation of OrderMetrics
type MockOrderMetrics struct {
	mock.Mock
}

func (m *MockOrderMetrics) RecordOrderCreated(ctx context.Context, source string, amount int64, currency string) {
	m.Called(ctx, source, amount, currency)
}
