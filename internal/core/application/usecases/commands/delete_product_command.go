package commands

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a catalog product.
// Existing order lines keep their priced snapshot.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete a product.
func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	cmd := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if productID <= 0 {
		return DeleteProductCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("%d is not a valid product id", productID),
		)
	}

	cmd.productID = productID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the product to delete.
func (c DeleteProductCommand) ProductID() int64 { return c.productID }
