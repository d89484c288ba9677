package queries

import (
	"errors"
	"time"

	"ecom/internal/pkg/guard"
)

var ErrUnbilledDeliveredOrdersQueryIsNotConstructed = errors.New(
	"UnbilledDeliveredOrdersQuery must be created via NewUnbilledDeliveredOrdersQuery constructor",
)

// UnbilledDeliveredOrdersQuery retrieves delivered orders that no invoice
// references yet. Feeds the scheduled default invoice issuing job.
type UnbilledDeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewUnbilledDeliveredOrdersQuery creates the unbilled-orders query.
func NewUnbilledDeliveredOrdersQuery() UnbilledDeliveredOrdersQuery {
	return UnbilledDeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q UnbilledDeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrUnbilledDeliveredOrdersQueryIsNotConstructed)
}

// UnbilledOrderResponse is one delivered order awaiting an invoice.
type UnbilledOrderResponse struct {
	ID           int64
	OrderNumber  string
	OrderDate    time.Time
	CustomerName string
	Amount       float64
}
