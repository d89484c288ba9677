package queries

import (
	"errors"
	"time"

	"ecom/internal/pkg/guard"
)

var ErrListShippingOrdersQueryIsNotConstructed = errors.New(
	"ListShippingOrdersQuery must be created via NewListShippingOrdersQuery constructor",
)

// ListShippingOrdersQuery retrieves the shipping view: every non-cancelled
// order with its destination address. Not scoped to an account; the shipping
// desk sees all orders.
type ListShippingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListShippingOrdersQuery creates a shipping listing query.
func NewListShippingOrdersQuery() ListShippingOrdersQuery {
	return ListShippingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListShippingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListShippingOrdersQueryIsNotConstructed)
}

// ShippingOrderResponse is one row of the shipping view.
type ShippingOrderResponse struct {
	ID           int64
	OrderNumber  string
	OrderDate    time.Time
	CustomerName string
	Status       string
	Address      OrderAddressResponse
}
