package queries

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one catalog product by id.
type GetProductQuery struct {
	productID int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a single-product query.
func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	if productID <= 0 {
		return GetProductQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("%d is not a valid product id", productID),
		)
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the product to look up.
func (q GetProductQuery) ProductID() int64 { return q.productID }
