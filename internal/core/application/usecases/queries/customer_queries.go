package queries

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var (
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// ListCustomersQuery retrieves all customers.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a customer listing query.
func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// GetCustomerQuery retrieves one customer by id.
type GetCustomerQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a single-customer query.
func NewGetCustomerQuery(customerID int64) (GetCustomerQuery, error) {
	if customerID <= 0 {
		return GetCustomerQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"customerId",
			fmt.Errorf("%d is not a valid customer id", customerID),
		)
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer to look up.
func (q GetCustomerQuery) CustomerID() int64 { return q.customerID }

// CustomerResponse is the customer read model.
type CustomerResponse struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	PhoneCountryCode string
	PhoneNumber      string
}
