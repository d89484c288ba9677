package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ecom/internal/pkg/errs"
)

// OrderNumberPrefix is the fixed prefix of every generated order number.
const OrderNumberPrefix = "ORD-"

// orderNumberPattern matches the canonical format: prefix plus a zero-padded
// sequence of at least five digits. Sequences above 99999 widen naturally.
var orderNumberPattern = regexp.MustCompile(`^ORD-\d{5,}$`)

// OrderNumber is the human-facing unique identifier of an order,
// formatted as "ORD-" followed by a five-digit zero-padded sequence.
//
// The sequence is derived from the highest existing order id plus one.
// Uniqueness is not guaranteed by the value itself; the order creation
// workflow relies on a unique database constraint and retries allocation
// on collision.
type OrderNumber struct {
	value string
}

// NewOrderNumber builds an order number from a positive sequence value.
func NewOrderNumber(sequence int64) (OrderNumber, error) {
	if sequence <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}

	return OrderNumber{value: fmt.Sprintf("%s%05d", OrderNumberPrefix, sequence)}, nil
}

// OrderNumberFromString validates and wraps an order number read from
// storage or a request path.
func OrderNumberFromString(value string) (OrderNumber, error) {
	if value == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(value) {
		return OrderNumber{}, errs.NewValueIsInvalidError("orderNumber")
	}

	return OrderNumber{value: value}, nil
}

// Validate reports whether the order number was created via a constructor.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	return nil
}

// Sequence returns the numeric part of the order number.
func (n OrderNumber) Sequence() int64 {
	seq, err := strconv.ParseInt(strings.TrimPrefix(n.value, OrderNumberPrefix), 10, 64)
	if err != nil {
		return 0
	}
	return seq
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// String returns the canonical textual form, e.g. "ORD-00042".
func (n OrderNumber) String() string {
	return n.value
}
