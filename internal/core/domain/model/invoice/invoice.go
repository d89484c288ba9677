// Package invoice contains the invoice entity. An invoice may be attached to
// an order but survives the order's deletion.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"ecom/internal/pkg/errs"
)

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Billing statuses used by the invoice lifecycle. The set is open; these are
// the values the backend issues itself.
const (
	StatusUnpaid = "Unpaid"
	StatusPaid   = "Paid"
	StatusVoid   = "Void"
)

// Invoice is a billing document, optionally linked to an order.
type Invoice struct {
	id            int64
	number        string
	customerName  string
	issuedDate    time.Time
	amount        float64
	status        string
	orderID       *int64
	isConstructed bool
}

// NewInvoice creates an invoice. Number, customer name and status are
// required; amount must not be negative.
func NewInvoice(number, customerName string, issuedDate time.Time, amount float64, status string, orderID *int64) (*Invoice, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("invoiceNumber")
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%f is negative", amount),
		)
	}
	if issuedDate.IsZero() {
		issuedDate = time.Now().UTC()
	}

	return &Invoice{
		number:        number,
		customerName:  customerName,
		issuedDate:    issuedDate,
		amount:        amount,
		status:        status,
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// RestoreInvoice rebuilds an invoice from persistence.
func RestoreInvoice(id int64, number, customerName string, issuedDate time.Time, amount float64, status string, orderID *int64) (*Invoice, error) {
	inv, err := NewInvoice(number, customerName, issuedDate, amount, status, orderID)
	if err != nil {
		return nil, err
	}

	inv.id = id
	return inv, nil
}

// Validate ensures the invoice was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ChangeStatus replaces the billing status.
func (i *Invoice) ChangeStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	i.status = status
	return nil
}

// ChangeAmount replaces the billed amount.
func (i *Invoice) ChangeAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%f is negative", amount),
		)
	}
	i.amount = amount
	return nil
}

// RenameCustomer replaces the billed customer name.
func (i *Invoice) RenameCustomer(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	i.customerName = name
	return nil
}

// ID returns the persistence identifier, zero until stored.
func (i *Invoice) ID() int64 { return i.id }

// Number returns the unique invoice number.
func (i *Invoice) Number() string { return i.number }

// CustomerName returns the billed customer name.
func (i *Invoice) CustomerName() string { return i.customerName }

// IssuedDate returns when the invoice was issued.
func (i *Invoice) IssuedDate() time.Time { return i.issuedDate }

// Amount returns the billed amount.
func (i *Invoice) Amount() float64 { return i.amount }

// Status returns the billing status.
func (i *Invoice) Status() string { return i.status }

// OrderID returns the linked order id, nil for standalone invoices.
func (i *Invoice) OrderID() *int64 { return i.orderID }
