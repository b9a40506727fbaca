package ordering

import (
	"context"
	"fmt"

	"github.com/voicewaiter/backend/internal/domain/ordering"
	"github.com/voicewaiter/backend/internal/infrastructure/logger"
	"github.com/voicewaiter/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// MenuService projects the platform catalog into menu rows.
type MenuService struct {
	catalog ordering.CatalogReader
}

// NewMenuService creates a new MenuService
func NewMenuService(catalog ordering.CatalogReader) *MenuService {
	return &MenuService{catalog: catalog}
}

// GetMenu fetches the whole catalog and returns one row per item variation.
// A fetch failure aborts the call; no partial menu is returned.
func (s *MenuService) GetMenu(ctx context.Context) ([]ordering.MenuItem, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "menu", "GetMenu")
	defer span.End()

	objects, err := s.catalog.ListCatalog(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		logger.L(ctx).Error("Failed to fetch catalog", zap.Error(err))
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	menu := ordering.ProjectMenu(objects)
	telemetry.SetAttributes(span, "catalog.object_count", len(objects), "menu.item_count", len(menu))
	logger.L(ctx).Debug("Menu projected",
		zap.Int("catalog_objects", len(objects)),
		zap.Int("menu_items", len(menu)))
	return menu, nil
}
