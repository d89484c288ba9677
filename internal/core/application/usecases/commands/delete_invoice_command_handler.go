package commands

import (
	"context"
)

// DeleteInvoiceCommandHandler removes an invoice.
type DeleteInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewDeleteInvoiceCommandHandler creates a handler for invoice deletion.
func NewDeleteInvoiceCommandHandler(uowFactory BillingUoWFactory) DeleteInvoiceCommandHandler {
	return DeleteInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice deletion command. The invoice must exist.
func (h *DeleteInvoiceCommandHandler) Handle(ctx context.Context, cmd DeleteInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvoiceRepository()

	if _, err := repo.GetByID(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
