package commands

import (
	"context"
)

// UpdateInvoiceCommandHandler applies a partial update to an invoice.
type UpdateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewUpdateInvoiceCommandHandler creates a handler for invoice patches.
func NewUpdateInvoiceCommandHandler(uowFactory BillingUoWFactory) UpdateInvoiceCommandHandler {
	return UpdateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice patch command.
func (h *UpdateInvoiceCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceCommand) error {
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

	inv, err := repo.GetByID(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	patch := cmd.Patch()
	if patch.CustomerName != nil {
		if err = inv.RenameCustomer(*patch.CustomerName); err != nil {
			return err
		}
	}
	if patch.Amount != nil {
		if err = inv.ChangeAmount(*patch.Amount); err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if err = inv.ChangeStatus(*patch.Status); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
