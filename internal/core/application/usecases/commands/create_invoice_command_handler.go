package commands

import (
	"context"

	"ecom/internal/core/domain/model/invoice"
)

// CreateInvoiceCommandHandler issues an invoice. When the command links an
// order, the order must exist.
type CreateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
func NewCreateInvoiceCommandHandler(uowFactory BillingUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice creation command and returns the stored
// invoice. A duplicate invoice number surfaces as errs.ErrObjectAlreadyExists.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.OrderID() != nil {
		if _, err := uow.OrderRepository().GetByID(ctx, *cmd.OrderID()); err != nil {
			return nil, err
		}
	}

	inv, err := invoice.NewInvoice(
		cmd.Number(), cmd.CustomerName(), cmd.IssuedDate(),
		cmd.Amount(), cmd.Status(), cmd.OrderID(),
	)
	if err != nil {
		return nil, err
	}

	stored, err := uow.InvoiceRepository().Add(ctx, inv)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stored, nil
}
