// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves one order with its customer, address and
// lines. When userID is positive the lookup is scoped to orders created by
// that account; zero means any account.
type GetOrderByNumberQuery struct {
	number kernel.OrderNumber
	userID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for a single order aggregate.
func NewGetOrderByNumberQuery(number kernel.OrderNumber, userID int64) (GetOrderByNumberQuery, error) {
	if err := number.Validate(); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return GetOrderByNumberQuery{
		number: number,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the order number to look up.
func (q GetOrderByNumberQuery) Number() kernel.OrderNumber { return q.number }

// UserID returns the account scope, zero for unscoped.
func (q GetOrderByNumberQuery) UserID() int64 { return q.userID }

// OrderCustomerResponse is the customer slice of the order read model.
type OrderCustomerResponse struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	PhoneCountryCode string
	PhoneNumber      string
}

// OrderAddressResponse is the shipping address slice of the order read model.
type OrderAddressResponse struct {
	Building    string
	ApartmentNo string
	HouseNo     string
	Street      string
	City        string
	Country     string
}

// OrderLineResponse is one order line joined with its product.
type OrderLineResponse struct {
	ProductID   int64
	ProductName string
	Permalink   string
	Quantity    int
	Discount    float64
	Subtotal    float64
}

// GetOrderByNumberQueryResponse is the full order read model.
type GetOrderByNumberQueryResponse struct {
	ID            int64
	OrderNumber   string
	OrderDate     time.Time
	PaymentMethod string
	Status        string
	Amount        float64
	Customer      OrderCustomerResponse
	Address       OrderAddressResponse
	Lines         []OrderLineResponse
}
