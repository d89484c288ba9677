package commands

import (
	"context"
)

// UpdateCustomerCommandHandler applies a partial update to a customer.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer patches.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer patch command.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	repo := uow.CustomerRepository()

	c, err := repo.GetByID(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	patch := cmd.Patch()
	if patch.FirstName != nil || patch.LastName != nil {
		firstName := c.FirstName()
		lastName := c.LastName()
		if patch.FirstName != nil {
			firstName = *patch.FirstName
		}
		if patch.LastName != nil {
			lastName = *patch.LastName
		}
		if err = c.Rename(firstName, lastName); err != nil {
			return err
		}
	}
	if patch.PhoneCountryCode != nil || patch.PhoneNumber != nil {
		countryCode := c.PhoneCountryCode()
		number := c.PhoneNumber()
		if patch.PhoneCountryCode != nil {
			countryCode = *patch.PhoneCountryCode
		}
		if patch.PhoneNumber != nil {
			number = *patch.PhoneNumber
		}
		c.ChangePhone(countryCode, number)
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
