// Package ordering contains the Ordering bounded context.
// It models the restaurant menu as projected from the commerce platform's
// catalog and the orders placed against it.
//
// Key concepts:
//   - CatalogObject: catalog record as read from the platform (item with variations)
//   - MenuItem: flattened, one row per sellable variation
//   - OrderItem / OrderRequest: line items submitted for creation
//   - PlacedOrder / Order: what the platform reports back
//
// Design Pattern: Ports & Adapters
//   - CatalogReader and OrderGateway are defined here
//   - The Square adapter in the infrastructure layer implements them
package ordering
