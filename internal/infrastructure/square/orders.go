package square

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/voicewaiter/backend/internal/domain/ordering"
)

const (
	createOrderPath  = "/v2/orders"
	searchOrdersPath = "/v2/orders/search"
)

// CreateOrder creates an order at the configured location
func (c *Client) CreateOrder(ctx context.Context, cmd ordering.CreateOrderCommand) (*ordering.PlacedOrder, error) {
	req := CreateOrderRequest{
		IdempotencyKey: cmd.IdempotencyKey,
		Order: Order{
			LocationID:  c.config.LocationID,
			ReferenceID: optionalString(cmd.ReferenceID),
			State:       string(cmd.State),
			LineItems:   make([]OrderLineItem, 0, len(cmd.LineItems)),
			Note:        optionalString(cmd.Note),
		},
	}
	for _, item := range cmd.LineItems {
		req.Order.LineItems = append(req.Order.LineItems, OrderLineItem{
			Quantity:        item.Quantity,
			CatalogObjectID: item.CatalogObjectID,
			Modifiers:       item.Modifiers,
		})
	}

	var resp CreateOrderResponse
	if err := c.doRequest(ctx, OperationCreateOrder, http.MethodPost, createOrderPath, nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, fmt.Errorf("%w: create order response has no order", ordering.ErrPlatformInvalidResponse)
	}

	c.logger.Info("Square order created",
		zap.String("order_id", resp.Order.ID),
		zap.String("state", resp.Order.State),
	)

	return &ordering.PlacedOrder{
		ID:    resp.Order.ID,
		State: ordering.OrderState(resp.Order.State),
		Total: toMoney(resp.Order.TotalMoney),
	}, nil
}

// SearchOrders returns the first page of orders at the configured location,
// newest first, restricted to the requested states.
func (c *Client) SearchOrders(ctx context.Context, search ordering.OrderSearch) ([]ordering.Order, error) {
	states := make([]string, 0, len(search.States))
	for _, s := range search.States {
		states = append(states, string(s))
	}

	req := SearchOrdersRequest{
		LocationIDs: []string{c.config.LocationID},
		Query: &SearchOrderQuery{
			Sort: &SearchOrderSort{SortField: sortCreatedAt, SortOrder: sortDescending},
		},
	}
	if len(states) > 0 {
		req.Query.Filter = &SearchOrderFilter{StateFilter: &SearchOrderStateFilter{States: states}}
	}
	if search.Limit > 0 {
		req.Limit = search.Limit
	}

	var resp SearchOrdersResponse
	if err := c.doRequest(ctx, OperationSearchOrders, http.MethodPost, searchOrdersPath, nil, req, &resp); err != nil {
		return nil, err
	}

	orders := make([]ordering.Order, 0, len(resp.Orders))
	for i := range resp.Orders {
		orders = append(orders, convertOrder(&resp.Orders[i]))
	}
	return orders, nil
}

// convertOrder converts a wire order to the domain type
func convertOrder(o *Order) ordering.Order {
	out := ordering.Order{
		ID:          o.ID,
		State:       ordering.OrderState(o.State),
		CreatedAt:   o.CreatedAt,
		Total:       toMoney(o.TotalMoney),
		LineItems:   make([]ordering.OrderLineItem, 0, len(o.LineItems)),
		ReferenceID: o.ReferenceID,
		Note:        o.Note,
	}
	for _, li := range o.LineItems {
		out.LineItems = append(out.LineItems, ordering.OrderLineItem{
			Name:            li.Name,
			Quantity:        li.Quantity,
			CatalogObjectID: li.CatalogObjectID,
			BasePrice:       toMoney(li.BasePriceMoney),
		})
	}
	return out
}
