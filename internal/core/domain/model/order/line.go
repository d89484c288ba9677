package order

import (
	"fmt"

	"ecom/internal/pkg/errs"
)

// Line is a single order line: a product reference with quantity, discount
// and the subtotal computed at creation time. Lines are immutable; pricing
// reads the product's current price once and never again.
type Line struct {
	id        int64
	productID int64
	quantity  int
	discount  float64
	subtotal  float64
}

// NewLine creates an order line with a pre-computed subtotal.
//
// Invariants: quantity > 0, discount >= 0, subtotal >= 0. The subtotal is
// computed by the line pricer (services.LinePricer); the constructor only
// guards the invariants.
func NewLine(productID int64, quantity int, discount, subtotal float64) (Line, error) {
	if productID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("%d is not a valid product id", productID),
		)
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if discount < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%f is negative", discount),
		)
	}
	if subtotal < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("%f is negative", subtotal),
		)
	}

	return Line{
		productID: productID,
		quantity:  quantity,
		discount:  discount,
		subtotal:  subtotal,
	}, nil
}

// RestoreLine rebuilds a line from persistence, including its row id.
func RestoreLine(id, productID int64, quantity int, discount, subtotal float64) (Line, error) {
	line, err := NewLine(productID, quantity, discount, subtotal)
	if err != nil {
		return Line{}, err
	}

	line.id = id
	return line, nil
}

// ID returns the persistence identifier, zero until stored.
func (l Line) ID() int64 { return l.id }

// ProductID returns the referenced product id.
func (l Line) ProductID() int64 { return l.productID }

// Quantity returns the ordered quantity.
func (l Line) Quantity() int { return l.quantity }

// Discount returns the absolute discount applied to the line.
func (l Line) Discount() float64 { return l.discount }

// Subtotal returns the line subtotal computed at creation time.
func (l Line) Subtotal() float64 { return l.subtotal }
