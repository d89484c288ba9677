package commands

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// ProductAttributes carries the optional catalog fields of a new product.
// Zero values mean "not provided" and leave the entity defaults in place.
type ProductAttributes struct {
	Description       string
	SKU               string
	Brand             string
	SalePrice         *float64
	TaxRate           float64
	StockQuantity     int
	StockStatus       string
	LowStockThreshold int
	AllowBackorder    bool
	ProductStatus     string
	IsFeatured        bool
}

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name         string
	permalink    string
	regularPrice float64
	attributes   ProductAttributes

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Name, permalink and a non-negative regular price are required.
func NewCreateProductCommand(
	name, permalink string,
	regularPrice float64,
	attributes ProductAttributes,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPermalink(permalink),
		cmd.setRegularPrice(regularPrice),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.attributes = attributes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// Permalink returns the unique catalog permalink.
func (c CreateProductCommand) Permalink() string { return c.permalink }

// RegularPrice returns the list price.
func (c CreateProductCommand) RegularPrice() float64 { return c.regularPrice }

// Attributes returns the optional catalog fields.
func (c CreateProductCommand) Attributes() ProductAttributes { return c.attributes }

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPermalink(permalink string) error {
	if permalink == "" {
		return errs.NewValueIsRequiredError("permalink")
	}

	c.permalink = permalink
	return nil
}

func (c *CreateProductCommand) setRegularPrice(regularPrice float64) error {
	if regularPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"regularPrice",
			fmt.Errorf("%f is negative", regularPrice),
		)
	}

	c.regularPrice = regularPrice
	return nil
}
