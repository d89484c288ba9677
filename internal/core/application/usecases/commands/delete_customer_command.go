package commands

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand represents a request to remove a customer.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID int64

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to delete a customer.
func NewDeleteCustomerCommand(customerID int64) (DeleteCustomerCommand, error) {
	cmd := DeleteCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if customerID <= 0 {
		return DeleteCustomerCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"customerId",
			fmt.Errorf("%d is not a valid customer id", customerID),
		)
	}

	cmd.customerID = customerID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer to delete.
func (c DeleteCustomerCommand) CustomerID() int64 { return c.customerID }
