package queries

import (
	"errors"
	"time"

	"ecom/internal/pkg/guard"
)

var ErrFilterOrdersQueryIsNotConstructed = errors.New(
	"FilterOrdersQuery must be created via NewFilterOrdersQuery constructor",
)

// FilterOrdersQuery retrieves order summaries filtered by status and/or a
// case-insensitive customer name fragment. Empty filters match everything.
// When userID is positive the result is scoped to that account's orders.
type FilterOrdersQuery struct {
	userID       int64
	status       string
	customerName string

	guard guard.ConstructorGuard
}

// NewFilterOrdersQuery creates a filtered order listing query.
func NewFilterOrdersQuery(userID int64, status, customerName string) FilterOrdersQuery {
	return FilterOrdersQuery{
		userID:       userID,
		status:       status,
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q FilterOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFilterOrdersQueryIsNotConstructed)
}

// UserID returns the account scope, zero for unscoped.
func (q FilterOrdersQuery) UserID() int64 { return q.userID }

// Status returns the status filter, empty for any.
func (q FilterOrdersQuery) Status() string { return q.status }

// CustomerName returns the customer name fragment, empty for any.
func (q FilterOrdersQuery) CustomerName() string { return q.customerName }

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID            int64
	OrderNumber   string
	OrderDate     time.Time
	CustomerName  string
	PaymentMethod string
	Status        string
	Amount        float64
}
