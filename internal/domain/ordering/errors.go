package ordering

import (
	"errors"

	"github.com/voicewaiter/backend/internal/domain/shared"
)

// Ordering errors
var (
	// ErrNoValidItems is returned when an order request has no line item
	// carrying a catalog object id.
	ErrNoValidItems = shared.NewDomainError("NO_VALID_ITEMS", "No valid items found in order")
	// ErrMissingCatalogObjectID marks a raw line item without an identifier.
	ErrMissingCatalogObjectID = shared.NewDomainError("MISSING_CATALOG_OBJECT_ID", "Order item has no item_id or catalog_object_id")
)

// Platform errors returned by adapters. Adapters wrap these with %w so
// callers can classify failures without knowing the platform.
var (
	ErrPlatformNotConfigured   = errors.New("ordering: platform not configured")
	ErrPlatformUnavailable     = errors.New("ordering: platform temporarily unavailable")
	ErrPlatformRequestFailed   = errors.New("ordering: platform request failed")
	ErrPlatformInvalidResponse = errors.New("ordering: invalid platform response")
	ErrPlatformAuthFailed      = errors.New("ordering: platform authentication failed")
	ErrPlatformRateLimited     = errors.New("ordering: platform rate limited")
)
