package order

import (
	"errors"
	"fmt"
	"time"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order subsystem: the order header plus
// its shipping address and order lines.
//
// Invariants:
//   - The order number is assigned exactly once at creation and never mutated.
//   - Amount always equals the sum of line subtotals.
//   - Status changes follow the transition table in Status.
//   - An order references its customer by id but does not own its lifecycle.
type Order struct {
	id            int64
	number        kernel.OrderNumber
	customerID    int64
	userID        int64
	orderDate     time.Time
	paymentMethod string
	status        Status
	amount        float64
	address       Address
	lines         []Line
	isConstructed bool
}

// NewOrder creates an order header in Pending status with a zero amount.
// Lines are added afterwards via AddLine, which keeps the amount invariant.
//
// The address is owned by the order from this point on and is persisted and
// deleted together with it.
func NewOrder(
	number kernel.OrderNumber,
	customerID int64,
	userID int64,
	orderDate time.Time,
	paymentMethod string,
	address Address,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setNumber(number),
		order.setCustomerID(customerID),
		order.setUserID(userID),
		order.setOrderDate(orderDate),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	// A zero-value address bypassed NewAddress; reject it here.
	if address.street == "" {
		return nil, errs.NewValueIsRequiredError("shippingAddress")
	}

	order.address = address
	return order, nil
}

// RestoreOrder rebuilds a persisted order aggregate, trusting the stored
// amount rather than recomputing it.
func RestoreOrder(
	id int64,
	number kernel.OrderNumber,
	customerID int64,
	userID int64,
	orderDate time.Time,
	paymentMethod string,
	status Status,
	amount float64,
	address Address,
	lines []Line,
) (*Order, error) {
	order, err := NewOrder(number, customerID, userID, orderDate, paymentMethod, address)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%f is negative", amount),
		)
	}

	order.id = id
	order.status = status
	order.amount = amount
	order.lines = append(order.lines, lines...)
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by order number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

// AddLine appends a line to the order and accumulates its subtotal into the
// order amount, preserving the amount invariant.
func (o *Order) AddLine(line Line) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	o.amount += line.Subtotal()
	return nil
}

// ChangeStatus moves the order along the status state machine.
// Moves outside the transition table are rejected.
func (o *Order) ChangeStatus(next Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ID returns the persistence identifier, zero until stored.
func (o *Order) ID() int64 { return o.id }

// Number returns the order number assigned at creation.
func (o *Order) Number() kernel.OrderNumber { return o.number }

// CustomerID returns the id of the customer the order belongs to.
func (o *Order) CustomerID() int64 { return o.customerID }

// UserID returns the id of the account that created the order.
func (o *Order) UserID() int64 { return o.userID }

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// PaymentMethod returns the chosen payment method.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Amount returns the order total, the sum of all line subtotals.
func (o *Order) Amount() float64 { return o.amount }

// Address returns the shipping address owned by the order.
func (o *Order) Address() Address { return o.address }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customerId",
			fmt.Errorf("%d is not a valid customer id", customerID),
		)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"userId",
			fmt.Errorf("%d is not a valid user id", userID),
		)
	}
	o.userID = userID
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}
