package ordering

import "github.com/shopspring/decimal"

// Defaults used when a searched order omits a field.
const (
	unknownOrderID    = "N/A"
	unknownOrderState = "UNKNOWN"
	unknownCreatedAt  = "N/A"
	unknownCatalogID  = "N/A"
	unknownQuantity   = "0"
)

// OrderSummary is the flattened view of a platform order.
type OrderSummary struct {
	OrderID     string
	State       string
	CreatedAt   string
	TotalAmount decimal.Decimal
	Currency    string
	LineItems   []LineItemSummary
	ReferenceID *string
	Note        *string
}

// LineItemSummary is the flattened view of an order line.
type LineItemSummary struct {
	Name            string
	Quantity        string
	CatalogObjectID string
	Price           *decimal.Decimal
}

// Summarize flattens an order, filling every absent field with its default.
func Summarize(o Order) OrderSummary {
	s := OrderSummary{
		OrderID:     orDefault(o.ID, unknownOrderID),
		State:       orDefault(string(o.State), unknownOrderState),
		CreatedAt:   orDefault(o.CreatedAt, unknownCreatedAt),
		TotalAmount: decimal.Zero,
		Currency:    DefaultCurrency,
		LineItems:   make([]LineItemSummary, 0, len(o.LineItems)),
		ReferenceID: o.ReferenceID,
		Note:        o.Note,
	}
	if o.Total != nil {
		s.TotalAmount = o.Total.Decimal()
		s.Currency = o.Total.CurrencyOrDefault()
	}
	for _, li := range o.LineItems {
		line := LineItemSummary{
			Name:            orDefault(li.Name, DefaultItemName),
			Quantity:        orDefault(li.Quantity, unknownQuantity),
			CatalogObjectID: orDefault(li.CatalogObjectID, unknownCatalogID),
		}
		if li.BasePrice != nil {
			price := li.BasePrice.Decimal()
			line.Price = &price
		}
		s.LineItems = append(s.LineItems, line)
	}
	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
