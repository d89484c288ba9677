package commands

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// CustomerPatch is a partial update of a customer: nil fields stay untouched.
// Email is the identity key and cannot be patched.
type CustomerPatch struct {
	FirstName        *string
	LastName         *string
	PhoneCountryCode *string
	PhoneNumber      *string
}

// UpdateCustomerCommand represents a partial update of a customer.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	patch      CustomerPatch

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to patch a customer.
func NewUpdateCustomerCommand(customerID int64, patch CustomerPatch) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if customerID <= 0 {
		return UpdateCustomerCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"customerId",
			fmt.Errorf("%d is not a valid customer id", customerID),
		)
	}
	if patch.FirstName != nil && *patch.FirstName == "" {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("firstName")
	}
	if patch.LastName != nil && *patch.LastName == "" {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("lastName")
	}

	cmd.customerID = customerID
	cmd.patch = patch
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer to patch.
func (c UpdateCustomerCommand) CustomerID() int64 { return c.customerID }

// Patch returns the partial update.
func (c UpdateCustomerCommand) Patch() CustomerPatch { return c.patch }
