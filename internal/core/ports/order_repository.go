// Package ports defines the persistence and outbound contracts of the core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Identifiers are assigned by the database, so writes return the persisted
// aggregate with its generated ids filled in.
type OrderRepository interface {
	// Add persists a new order header together with its shipping address and
	// returns the stored aggregate. Lines present on the aggregate are NOT
	// written; use AddLine for each of them.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// AddLine persists one order line for an already stored order.
	AddLine(ctx context.Context, orderID int64, line order.Line) error

	// Update persists changes to an existing order aggregate (status, amount).
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByID retrieves an order with its address and lines.
	GetByID(ctx context.Context, id int64) (*order.Order, error)

	// GetByNumber retrieves an order by its business order number.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// Delete removes an order with its address and lines. Invoices that
	// reference the order are detached, not removed.
	Delete(ctx context.Context, id int64) error

	// MaxID returns the highest order id currently stored, zero when the
	// table is empty. Order numbers are derived from it.
	MaxID(ctx context.Context) (int64, error)
}
