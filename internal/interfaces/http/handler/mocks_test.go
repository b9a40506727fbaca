package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// MockMenuReader is a mock implementation of MenuReader
type MockMenuReader struct {
	mock.Mock
}

func (m *MockMenuReader) GetMenu(ctx context.Context) ([]ordering.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.MenuItem), args.Error(1)
}

// MockOrderManager is a mock implementation of OrderManager
type MockOrderManager struct {
	mock.Mock
}

func (m *MockOrderManager) PlaceOrder(ctx context.Context, req ordering.OrderRequest, source string) (*ordering.PlacedOrder, error) {
	args := m.Called(ctx, req, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.PlacedOrder), args.Error(1)
}

func (m *MockOrderManager) RecentOrders(ctx context.Context, limit int) ([]ordering.OrderSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.OrderSummary), args.Error(1)
}

// newTestEngine builds an engine with the request ID middleware and the given route.
func newTestEngine(method, path string, h gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Handle(method, path, h)
	return engine
}
