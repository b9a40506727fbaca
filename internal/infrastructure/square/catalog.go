package square

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/voicewaiter/backend/internal/domain/ordering"
)

const listCatalogPath = "/v2/catalog/list"

// ListCatalog returns every ITEM object in the catalog, following the
// pagination cursor until Square stops returning one.
func (c *Client) ListCatalog(ctx context.Context) ([]ordering.CatalogObject, error) {
	objects := make([]ordering.CatalogObject, 0)
	seen := make(map[string]struct{})
	cursor := ""
	pages := 0

	for {
		query := url.Values{}
		query.Set("types", catalogTypeItem)
		if cursor != "" {
			query.Set("cursor", cursor)
		}

		var resp ListCatalogResponse
		if err := c.doRequest(ctx, OperationListCatalog, http.MethodGet, listCatalogPath, query, nil, &resp); err != nil {
			return nil, err
		}
		pages++
		for i := range resp.Objects {
			objects = append(objects, convertCatalogObject(&resp.Objects[i]))
		}

		if resp.Cursor == "" {
			break
		}
		if _, dup := seen[resp.Cursor]; dup {
			return nil, fmt.Errorf("%w: catalog cursor %q repeated", ordering.ErrPlatformInvalidResponse, resp.Cursor)
		}
		seen[resp.Cursor] = struct{}{}
		cursor = resp.Cursor
	}

	c.logger.Debug("Fetched Square catalog",
		zap.Int("pages", pages),
		zap.Int("objects", len(objects)),
	)
	return objects, nil
}

// convertCatalogObject converts a wire catalog object to the domain type
func convertCatalogObject(obj *CatalogObject) ordering.CatalogObject {
	out := ordering.CatalogObject{
		ID:   obj.ID,
		Type: ordering.CatalogObjectType(obj.Type),
	}
	if obj.ItemData == nil {
		if out.Type == ordering.CatalogObjectTypeItem {
			out.Item = &ordering.CatalogItem{}
		}
		return out
	}

	data := obj.ItemData
	item := &ordering.CatalogItem{
		Name:        data.Name,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		Variations:  make([]ordering.CatalogItemVariation, 0, len(data.Variations)),
	}
	if item.CategoryID == nil && data.ReportingCategory != nil && data.ReportingCategory.ID != "" {
		id := data.ReportingCategory.ID
		item.CategoryID = &id
	}
	for _, v := range data.Variations {
		variation := ordering.CatalogItemVariation{ID: v.ID}
		if v.ItemVariationData != nil {
			variation.Name = v.ItemVariationData.Name
			variation.Price = toMoney(v.ItemVariationData.PriceMoney)
		}
		item.Variations = append(item.Variations, variation)
	}
	out.Item = item
	return out
}
