package queries

import (
	"errors"
	"fmt"
	"time"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var (
	ErrListInvoicesQueryIsNotConstructed = errors.New(
		"ListInvoicesQuery must be created via NewListInvoicesQuery constructor",
	)
	ErrGetInvoiceQueryIsNotConstructed = errors.New(
		"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
	)
)

// ListInvoicesQuery retrieves all invoices.
type ListInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewListInvoicesQuery creates an invoice listing query.
func NewListInvoicesQuery() ListInvoicesQuery {
	return ListInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListInvoicesQueryIsNotConstructed)
}

// GetInvoiceQuery retrieves one invoice by id.
type GetInvoiceQuery struct {
	invoiceID int64

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a single-invoice query.
func NewGetInvoiceQuery(invoiceID int64) (GetInvoiceQuery, error) {
	if invoiceID <= 0 {
		return GetInvoiceQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"invoiceId",
			fmt.Errorf("%d is not a valid invoice id", invoiceID),
		)
	}

	return GetInvoiceQuery{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// InvoiceID returns the invoice to look up.
func (q GetInvoiceQuery) InvoiceID() int64 { return q.invoiceID }

// InvoiceResponse is the invoice read model. OrderNumber is filled when the
// invoice is linked to an order that still exists.
type InvoiceResponse struct {
	ID            int64
	InvoiceNumber string
	CustomerName  string
	IssuedDate    time.Time
	Amount        float64
	Status        string
	OrderID       *int64
	OrderNumber   string
}
