package square

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Common Square API Types
// ---------------------------------------------------------------------------

// Money is Square's money object; Amount is in minor units
type Money struct {
	Amount   *int64 `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// Error is one entry of a Square errors[] array
type Error struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// ErrorResponse is the body Square returns on failure
type ErrorResponse struct {
	Errors []Error `json:"errors,omitempty"`
}

// String joins all errors as "CODE: detail".
func (r ErrorResponse) String() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e.Detail == "" {
			parts = append(parts, e.Code)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", e.Code, e.Detail))
	}
	return strings.Join(parts, "; ")
}

// ---------------------------------------------------------------------------
// Catalog Types
// ---------------------------------------------------------------------------

// CatalogObject is a catalog record. Only the payloads this service reads are modeled.
type CatalogObject struct {
	Type              string                    `json:"type"`
	ID                string                    `json:"id"`
	ItemData          *CatalogItemData          `json:"item_data,omitempty"`
	ItemVariationData *CatalogItemVariationData `json:"item_variation_data,omitempty"`
}

// CatalogItemData is the payload of an ITEM object
type CatalogItemData struct {
	Name              string                 `json:"name,omitempty"`
	Description       *string                `json:"description,omitempty"`
	CategoryID        *string                `json:"category_id,omitempty"`
	ReportingCategory *CatalogObjectCategory `json:"reporting_category,omitempty"`
	Variations        []CatalogObject        `json:"variations,omitempty"`
}

// CatalogObjectCategory references a category by id
type CatalogObjectCategory struct {
	ID string `json:"id"`
}

// CatalogItemVariationData is the payload of an ITEM_VARIATION object
type CatalogItemVariationData struct {
	Name       string `json:"name,omitempty"`
	PriceMoney *Money `json:"price_money,omitempty"`
}

// ListCatalogResponse is the body of GET /v2/catalog/list
type ListCatalogResponse struct {
	ErrorResponse
	Cursor  string          `json:"cursor,omitempty"`
	Objects []CatalogObject `json:"objects,omitempty"`
}

// ---------------------------------------------------------------------------
// Order Types
// ---------------------------------------------------------------------------

// OrderLineItemModifier is passed through from the caller as-is; Square
// validates its shape
type OrderLineItemModifier = any

// OrderLineItem is a line of an order, used both for creation and search results
type OrderLineItem struct {
	Name            string                  `json:"name,omitempty"`
	Quantity        string                  `json:"quantity"`
	CatalogObjectID string                  `json:"catalog_object_id,omitempty"`
	Modifiers       []OrderLineItemModifier `json:"modifiers,omitempty"`
	BasePriceMoney  *Money                  `json:"base_price_money,omitempty"`
}

// Order is a Square order
type Order struct {
	ID          string          `json:"id,omitempty"`
	LocationID  string          `json:"location_id"`
	ReferenceID *string         `json:"reference_id,omitempty"`
	State       string          `json:"state,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
	LineItems   []OrderLineItem `json:"line_items,omitempty"`
	Note        *string         `json:"note,omitempty"`
	TotalMoney  *Money          `json:"total_money,omitempty"`
}

// CreateOrderRequest is the body of POST /v2/orders
type CreateOrderRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
	Order          Order  `json:"order"`
}

// CreateOrderResponse is the answer to POST /v2/orders
type CreateOrderResponse struct {
	ErrorResponse
	Order *Order `json:"order,omitempty"`
}

// SearchOrdersRequest is the body of POST /v2/orders/search
type SearchOrdersRequest struct {
	LocationIDs []string          `json:"location_ids"`
	Query       *SearchOrderQuery `json:"query,omitempty"`
	Limit       int               `json:"limit,omitempty"`
	Cursor      string            `json:"cursor,omitempty"`
}

// SearchOrderQuery filters and sorts an order search
type SearchOrderQuery struct {
	Filter *SearchOrderFilter `json:"filter,omitempty"`
	Sort   *SearchOrderSort   `json:"sort,omitempty"`
}

// SearchOrderFilter restricts the search
type SearchOrderFilter struct {
	StateFilter *SearchOrderStateFilter `json:"state_filter,omitempty"`
}

// SearchOrderStateFilter matches orders in any of the given states
type SearchOrderStateFilter struct {
	States []string `json:"states"`
}

// SearchOrderSort orders the results
type SearchOrderSort struct {
	SortField string `json:"sort_field"`
	SortOrder string `json:"sort_order"`
}

// SearchOrdersResponse is the answer to POST /v2/orders/search
type SearchOrdersResponse struct {
	ErrorResponse
	Orders []Order `json:"orders,omitempty"`
	Cursor string  `json:"cursor,omitempty"`
}

// Square wire constants
const (
	catalogTypeItem = "ITEM"
	sortCreatedAt   = "CREATED_AT"
	sortDescending  = "DESC"
)
