package commands

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to delete an order together with
// its address and lines. A linked invoice is detached, not deleted.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(orderID int64) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a valid order id", orderID),
		)
	}

	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}
