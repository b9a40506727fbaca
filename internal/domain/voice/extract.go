package voice

import (
	"encoding/json"
	"strconv"

	"github.com/voicewaiter/backend/internal/domain/ordering"
)

// SkippedItem records a raw line item dropped during extraction.
type SkippedItem struct {
	Index int
	Item  RawItem
	Err   error
}

// ExtractOrderItems converts raw order lines into OrderItems.
//
//   - id: item_id, then catalog_object_id; lines without one are skipped
//   - quantity: defaults to "1"; strings verbatim, numbers as their literal text
//   - modifiers: a non-empty list is passed through unchanged, entry by entry
//
// Skipping is not an error: the caller decides what an empty result means.
func ExtractOrderItems(raw []RawItem) ([]ordering.OrderItem, []SkippedItem) {
	items := make([]ordering.OrderItem, 0, len(raw))
	var skipped []SkippedItem
	for i, r := range raw {
		id := firstString(r, itemIDKeys)
		if id == "" {
			skipped = append(skipped, SkippedItem{Index: i, Item: r, Err: ordering.ErrMissingCatalogObjectID})
			continue
		}
		items = append(items, ordering.OrderItem{
			CatalogObjectID: id,
			Quantity:        quantity(r[keyQuantity]),
			Modifiers:       modifiers(r[keyModifiers]),
		})
	}
	return items, skipped
}

// OrderRequestFrom builds an order request from call parameters.
func OrderRequestFrom(p Parameters) (ordering.OrderRequest, []SkippedItem) {
	items, skipped := ExtractOrderItems(p.Items)
	return ordering.OrderRequest{
		Items:               items,
		CustomerName:        p.CustomerName,
		SpecialInstructions: p.SpecialInstructions,
	}, skipped
}

func quantity(v any) string {
	switch q := v.(type) {
	case nil:
		return ordering.DefaultQuantity
	case string:
		return q
	case json.Number:
		return q.String()
	case bool:
		return strconv.FormatBool(q)
	default:
		b, err := json.Marshal(q)
		if err != nil {
			return ordering.DefaultQuantity
		}
		return string(b)
	}
}

// modifiers returns a non-empty list as-is; anything else means no modifiers.
func modifiers(v any) []any {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	return list
}
