package dto

import (
	"github.com/voicewaiter/backend/internal/domain/ordering"
)

// CreateOrderRequest is the body of POST /order
type CreateOrderRequest struct {
	Items               []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerName        string             `json:"customer_name"`
	SpecialInstructions string             `json:"special_instructions"`
}

// OrderItemRequest is one line of a direct order
type OrderItemRequest struct {
	CatalogObjectID string `json:"catalog_object_id" binding:"required"`
	Quantity        string `json:"quantity"`
	Modifiers       []any  `json:"modifiers"`
}

// ToOrderRequest converts the body to a domain order request.
// An empty quantity defaults to "1".
func (r CreateOrderRequest) ToOrderRequest() ordering.OrderRequest {
	items := make([]ordering.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		qty := item.Quantity
		if qty == "" {
			qty = ordering.DefaultQuantity
		}
		var modifiers []any
		if len(item.Modifiers) > 0 {
			modifiers = item.Modifiers
		}
		items = append(items, ordering.OrderItem{
			CatalogObjectID: item.CatalogObjectID,
			Quantity:        qty,
			Modifiers:       modifiers,
		})
	}
	return ordering.OrderRequest{
		Items:               items,
		CustomerName:        r.CustomerName,
		SpecialInstructions: r.SpecialInstructions,
	}
}

// MoneyResponse is an amount in minor units
type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PlacedOrderResponse describes a created order
type PlacedOrderResponse struct {
	OrderID    string         `json:"order_id"`
	State      string         `json:"state"`
	TotalMoney *MoneyResponse `json:"total_money"`
}

// CreateOrderResponse is the body returned by POST /order
type CreateOrderResponse struct {
	Status string              `json:"status"`
	Order  PlacedOrderResponse `json:"order"`
}

// NewCreateOrderResponse converts a placed order
func NewCreateOrderResponse(o *ordering.PlacedOrder) CreateOrderResponse {
	resp := CreateOrderResponse{
		Status: "success",
		Order: PlacedOrderResponse{
			OrderID: o.ID,
			State:   string(o.State),
		},
	}
	if o.Total != nil {
		resp.Order.TotalMoney = &MoneyResponse{
			Amount:   o.Total.Amount,
			Currency: o.Total.CurrencyOrDefault(),
		}
	}
	return resp
}

// RecentOrdersQuery binds GET /orders/recent
type RecentOrdersQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// LineItemResponse is one line of a recent order
type LineItemResponse struct {
	Name            string   `json:"name"`
	Quantity        string   `json:"quantity"`
	CatalogObjectID string   `json:"catalog_object_id"`
	Price           *float64 `json:"price,omitempty"`
}

// OrderSummaryResponse is one recent order
type OrderSummaryResponse struct {
	OrderID     string             `json:"order_id"`
	State       string             `json:"state"`
	CreatedAt   string             `json:"created_at"`
	TotalAmount float64            `json:"total_amount"`
	Currency    string             `json:"currency"`
	LineItems   []LineItemResponse `json:"line_items"`
	ReferenceID *string            `json:"reference_id"`
	Note        *string            `json:"note"`
}

// RecentOrdersResponse is the body returned by GET /orders/recent
type RecentOrdersResponse struct {
	Status string                 `json:"status"`
	Count  int                    `json:"count"`
	Orders []OrderSummaryResponse `json:"orders"`
}

// NewRecentOrdersResponse converts order summaries
func NewRecentOrdersResponse(summaries []ordering.OrderSummary) RecentOrdersResponse {
	orders := make([]OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		lines := make([]LineItemResponse, 0, len(s.LineItems))
		for _, li := range s.LineItems {
			line := LineItemResponse{
				Name:            li.Name,
				Quantity:        li.Quantity,
				CatalogObjectID: li.CatalogObjectID,
			}
			if li.Price != nil {
				price := li.Price.InexactFloat64()
				line.Price = &price
			}
			lines = append(lines, line)
		}
		orders = append(orders, OrderSummaryResponse{
			OrderID:     s.OrderID,
			State:       s.State,
			CreatedAt:   s.CreatedAt,
			TotalAmount: s.TotalAmount.InexactFloat64(),
			Currency:    s.Currency,
			LineItems:   lines,
			ReferenceID: s.ReferenceID,
			Note:        s.Note,
		})
	}
	return RecentOrdersResponse{
		Status: "success",
		Count:  len(orders),
		Orders: orders,
	}
}
