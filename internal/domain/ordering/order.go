package ordering

// OrderState is the platform order lifecycle state.
type OrderState string

// Order states known to the platform.
const (
	OrderStateDraft     OrderState = "DRAFT"
	OrderStateOpen      OrderState = "OPEN"
	OrderStateCompleted OrderState = "COMPLETED"
	OrderStateCanceled  OrderState = "CANCELED"
)

// RecentOrderStates are the states searched when listing recent orders.
var RecentOrderStates = []OrderState{
	OrderStateOpen,
	OrderStateCompleted,
	OrderStateCanceled,
	OrderStateDraft,
}

// DefaultQuantity is used when a line item does not state a quantity.
const DefaultQuantity = "1"

// OrderItem is a line item to create. Quantity is forwarded as the string
// the caller supplied. Modifiers is the caller's list, entries untouched,
// so the platform sees exactly what was sent.
type OrderItem struct {
	CatalogObjectID string
	Quantity        string
	Modifiers       []any
}

// OrderRequest is a transient order-creation input.
type OrderRequest struct {
	Items               []OrderItem
	CustomerName        string
	SpecialInstructions string
}

// Validate checks that the request carries at least one identifiable item.
func (r *OrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoValidItems
	}
	for _, item := range r.Items {
		if item.CatalogObjectID == "" {
			return ErrMissingCatalogObjectID
		}
	}
	return nil
}

// CreateOrderCommand is what the OrderGateway sends to the platform.
type CreateOrderCommand struct {
	IdempotencyKey string
	LineItems      []OrderItem
	ReferenceID    string
	Note           string
	State          OrderState
}

// PlacedOrder is the platform's answer to a create-order call.
type PlacedOrder struct {
	ID    string
	State OrderState
	Total *Money
}

// OrderSearch describes a recent-orders query.
type OrderSearch struct {
	States []OrderState
	Limit  int
}

// Order is an order as returned by a platform search.
// Empty strings mean the platform omitted the field.
type Order struct {
	ID          string
	State       OrderState
	CreatedAt   string
	Total       *Money
	LineItems   []OrderLineItem
	ReferenceID *string
	Note        *string
}

// OrderLineItem is one line of a searched order.
type OrderLineItem struct {
	Name            string
	Quantity        string
	CatalogObjectID string
	BasePrice       *Money
}
