package dto

import "github.com/voicewaiter/backend/internal/domain/ordering"

// MenuItemResponse is one menu row.
// Price is in major currency units; null means the price is unknown.
type MenuItemResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
}

// NewMenuResponse converts menu rows, keeping their order. The result is
// never nil so an empty menu encodes as [].
func NewMenuResponse(items []ordering.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		row := MenuItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Category:    item.CategoryID,
		}
		if item.Price != nil {
			price := item.Price.InexactFloat64()
			row.Price = &price
		}
		out = append(out, row)
	}
	return out
}
