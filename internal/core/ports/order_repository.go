// Package ports defines the contracts between the core and its adapters:
// repositories for each aggregate, the unit of work that binds them to one
// transaction, and the anti-forgery token store consulted by the transport.
package ports

import (
	"context"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for active orders.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and buyer contact of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. A missing order yields an error wrapping
	// errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	// Concurrent finalizations of the same order serialize here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and its items. Deleting a missing order yields
	// an error wrapping errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteLegacy removes every order none of whose items carries a product
	// reference and reports how many were removed. Orders mixing referenced
	// and legacy items are kept; finalization resolves their legacy items by
	// name.
	DeleteLegacy(ctx context.Context) (int64, error)
}
