package services

import (
	"fmt"

	"ecom/internal/core/domain/model/order"
	"ecom/internal/core/domain/model/product"
	"ecom/internal/pkg/errs"
)

// LinePricer is a domain service that prices a single order line.
//
// Pricing rules:
//   - effective price = product sale price when set, else regular price
//   - subtotal = effective price × quantity − discount, floored at zero
//   - quantity must be positive; discount must not be negative
//
// The pricer reads the product's current price once; the resulting line is a
// snapshot-free reference and never revisits the catalog.
type LinePricer struct{}

// NewLinePricer creates a LinePricer.
func NewLinePricer() LinePricer {
	return LinePricer{}
}

// Price computes the subtotal for the requested quantity and discount and
// returns the priced order line.
func (LinePricer) Price(p *product.Product, quantity int, discount float64) (order.Line, error) {
	if err := p.Validate(); err != nil {
		return order.Line{}, err
	}
	if quantity <= 0 {
		return order.Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if discount < 0 {
		return order.Line{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%f is negative", discount),
		)
	}

	subtotal := p.EffectivePrice()*float64(quantity) - discount
	if subtotal < 0 {
		subtotal = 0
	}

	return order.NewLine(p.ID(), quantity, discount, subtotal)
}
