package ordering

import "github.com/shopspring/decimal"

// CatalogObjectType is the platform's type tag for a catalog object.
type CatalogObjectType string

// CatalogObjectTypeItem tags sellable items; the only type projected into the menu.
const CatalogObjectTypeItem CatalogObjectType = "ITEM"

// DefaultItemName is used when a catalog item carries no name.
const DefaultItemName = "Unknown Item"

// CatalogObject is one record from the platform catalog.
// Item is set only for ITEM objects.
type CatalogObject struct {
	ID   string
	Type CatalogObjectType
	Item *CatalogItem
}

// CatalogItem is the item payload of an ITEM object.
type CatalogItem struct {
	Name        string
	Description *string
	CategoryID  *string
	Variations  []CatalogItemVariation
}

// CatalogItemVariation is a sellable size/option of an item.
// Price is nil when the platform reports no price for the variation.
type CatalogItemVariation struct {
	ID    string
	Name  string
	Price *Money
}

// MenuItem is the simplified menu row served to the voice assistant.
type MenuItem struct {
	ID          string
	Name        string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *string
}

// ProjectMenu flattens catalog objects into menu rows: only ITEM objects are
// kept and each of their variations yields one row. A zero or absent price
// amount yields a nil price so "unknown" stays distinct from "free".
func ProjectMenu(objects []CatalogObject) []MenuItem {
	items := make([]MenuItem, 0, len(objects))
	for _, obj := range objects {
		if obj.Type != CatalogObjectTypeItem || obj.Item == nil {
			continue
		}
		name := obj.Item.Name
		if name == "" {
			name = DefaultItemName
		}
		for _, variation := range obj.Item.Variations {
			items = append(items, MenuItem{
				ID:          variation.ID,
				Name:        name,
				Description: obj.Item.Description,
				Price:       variationPrice(variation.Price),
				CategoryID:  obj.Item.CategoryID,
			})
		}
	}
	return items
}

func variationPrice(m *Money) *decimal.Decimal {
	if m == nil || m.IsZero() {
		return nil
	}
	price := m.Decimal()
	return &price
}
