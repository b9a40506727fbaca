package ordering

import "context"

// CatalogReader returns the platform's full catalog as one flat sequence.
// Pagination is the adapter's concern.
type CatalogReader interface {
	ListCatalog(ctx context.Context) ([]CatalogObject, error)
}

// OrderGateway creates and searches orders on the platform.
type OrderGateway interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*PlacedOrder, error)
	SearchOrders(ctx context.Context, search OrderSearch) ([]Order, error)
}
