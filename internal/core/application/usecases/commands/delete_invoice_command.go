package commands

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrDeleteInvoiceCommandIsNotConstructed = errors.New(
	"DeleteInvoiceCommand must be created via NewDeleteInvoiceCommand constructor",
)

// DeleteInvoiceCommand represents a request to remove an invoice.
type DeleteInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID int64

	guard guard.ConstructorGuard
}

// NewDeleteInvoiceCommand creates a command to delete an invoice.
func NewDeleteInvoiceCommand(invoiceID int64) (DeleteInvoiceCommand, error) {
	cmd := DeleteInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if invoiceID <= 0 {
		return DeleteInvoiceCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"invoiceId",
			fmt.Errorf("%d is not a valid invoice id", invoiceID),
		)
	}

	cmd.invoiceID = invoiceID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the invoice to delete.
func (c DeleteInvoiceCommand) InvoiceID() int64 { return c.invoiceID }
