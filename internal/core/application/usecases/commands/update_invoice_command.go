package commands

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrUpdateInvoiceCommandIsNotConstructed = errors.New(
	"UpdateInvoiceCommand must be created via NewUpdateInvoiceCommand constructor",
)

// InvoicePatch is a partial update of an invoice: nil fields stay untouched.
// The invoice number is immutable.
type InvoicePatch struct {
	CustomerName *string
	Amount       *float64
	Status       *string
}

// UpdateInvoiceCommand represents a partial update of an invoice.
type UpdateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID int64
	patch     InvoicePatch

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceCommand creates a command to patch an invoice.
func NewUpdateInvoiceCommand(invoiceID int64, patch InvoicePatch) (UpdateInvoiceCommand, error) {
	cmd := UpdateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if invoiceID <= 0 {
		return UpdateInvoiceCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"invoiceId",
			fmt.Errorf("%d is not a valid invoice id", invoiceID),
		)
	}
	if patch.CustomerName != nil && *patch.CustomerName == "" {
		return UpdateInvoiceCommand{}, errs.NewValueIsRequiredError("customerName")
	}
	if patch.Status != nil && *patch.Status == "" {
		return UpdateInvoiceCommand{}, errs.NewValueIsRequiredError("status")
	}

	cmd.invoiceID = invoiceID
	cmd.patch = patch
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the invoice to patch.
func (c UpdateInvoiceCommand) InvoiceID() int64 { return c.invoiceID }

// Patch returns the partial update.
func (c UpdateInvoiceCommand) Patch() InvoicePatch { return c.patch }
