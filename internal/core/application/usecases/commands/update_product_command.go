package commands

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// ProductPatch is a partial update: nil fields are left untouched.
// SalePrice sets a new sale price; ClearSalePrice removes the active sale
// and wins when both are given.
type ProductPatch struct {
	Name              *string
	Description       *string
	SKU               *string
	Brand             *string
	RegularPrice      *float64
	SalePrice         *float64
	ClearSalePrice    bool
	TaxRate           *float64
	StockQuantity     *int
	StockStatus       *string
	LowStockThreshold *int
	AllowBackorder    *bool
	ProductStatus     *string
	IsFeatured        *bool
}

// UpdateProductCommand represents a partial update of a catalog product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	patch     ProductPatch

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to patch a product.
func NewUpdateProductCommand(productID int64, patch ProductPatch) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if productID <= 0 {
		return UpdateProductCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("%d is not a valid product id", productID),
		)
	}
	if patch.Name != nil && *patch.Name == "" {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("name")
	}

	cmd.productID = productID
	cmd.patch = patch
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the product to patch.
func (c UpdateProductCommand) ProductID() int64 { return c.productID }

// Patch returns the partial update.
func (c UpdateProductCommand) Patch() ProductPatch { return c.patch }
