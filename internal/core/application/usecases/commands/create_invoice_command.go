package commands

import (
	"errors"
	"fmt"
	"time"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents a request to issue an invoice, either
// standalone or attached to an order.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	number       string
	customerName string
	issuedDate   time.Time
	amount       float64
	status       string
	orderID      *int64

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to issue an invoice. A zero
// issued date defaults to the current time at entity construction.
func NewCreateInvoiceCommand(
	number, customerName string,
	issuedDate time.Time,
	amount float64,
	status string,
	orderID *int64,
) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if number == "" {
		return CreateInvoiceCommand{}, errs.NewValueIsRequiredError("invoiceNumber")
	}
	if customerName == "" {
		return CreateInvoiceCommand{}, errs.NewValueIsRequiredError("customerName")
	}
	if status == "" {
		return CreateInvoiceCommand{}, errs.NewValueIsRequiredError("status")
	}
	if amount < 0 {
		return CreateInvoiceCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%f is negative", amount),
		)
	}
	if orderID != nil && *orderID <= 0 {
		return CreateInvoiceCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a valid order id", *orderID),
		)
	}

	cmd.number = number
	cmd.customerName = customerName
	cmd.issuedDate = issuedDate
	cmd.amount = amount
	cmd.status = status
	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// Number returns the invoice number.
func (c CreateInvoiceCommand) Number() string { return c.number }

// CustomerName returns the billed customer name.
func (c CreateInvoiceCommand) CustomerName() string { return c.customerName }

// IssuedDate returns the requested issue date, zero for "now".
func (c CreateInvoiceCommand) IssuedDate() time.Time { return c.issuedDate }

// Amount returns the billed amount.
func (c CreateInvoiceCommand) Amount() float64 { return c.amount }

// Status returns the billing status.
func (c CreateInvoiceCommand) Status() string { return c.status }

// OrderID returns the linked order id, nil for standalone invoices.
func (c CreateInvoiceCommand) OrderID() *int64 { return c.orderID }
