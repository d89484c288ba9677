package commands

import (
	"errors"
	"fmt"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"
	"ecom/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CustomerInfo identifies the customer the order is for. The email is the
// identity key; the customer is created on first use.
type CustomerInfo struct {
	FirstName        string
	LastName         string
	Email            kernel.Email
	PhoneCountryCode string
	PhoneNumber      string
}

// ShippingInfo is the destination address for the order.
type ShippingInfo struct {
	Building    string
	ApartmentNo string
	HouseNo     string
	Street      string
	City        string
	Country     string
}

// LineItem is one requested product with quantity and optional discount.
type LineItem struct {
	ProductID int64
	Quantity  int
	Discount  float64
}

// CreateOrderCommand represents a request to create a new order for a
// customer, with a shipping address and at least one line item.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer      CustomerInfo
	shipping      ShippingInfo
	items         []LineItem
	paymentMethod string
	userID        int64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Validates the
// customer identity, the shipping address, the line items and the acting
// user. Returns an error if any validation fails.
func NewCreateOrderCommand(
	customer CustomerInfo,
	shipping ShippingInfo,
	items []LineItem,
	paymentMethod string,
	userID int64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomer(customer),
		orderCommand.setShipping(shipping),
		orderCommand.setItems(items),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setUserID(userID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the customer identity for find-or-create resolution.
func (c CreateOrderCommand) Customer() CustomerInfo {
	return c.customer
}

// Shipping returns the shipping destination.
func (c CreateOrderCommand) Shipping() ShippingInfo {
	return c.shipping
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// UserID returns the id of the account placing the order.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

func (c *CreateOrderCommand) setCustomer(customer CustomerInfo) error {
	if customer.FirstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if customer.LastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	if err := customer.Email.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setShipping(shipping ShippingInfo) error {
	if shipping.Street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if shipping.City == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if shipping.Country == "" {
		return errs.NewValueIsRequiredError("country")
	}

	c.shipping = shipping
	return nil
}

func (c *CreateOrderCommand) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if item.ProductID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"productId",
				fmt.Errorf("item %d: %d is not a valid product id", i, item.ProductID),
			)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("item %d: %d is not greater than 0", i, item.Quantity),
			)
		}
		if item.Discount < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"discount",
				fmt.Errorf("item %d: %f is negative", i, item.Discount),
			)
		}
	}

	c.items = make([]LineItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"userId",
			fmt.Errorf("%d is not a valid user id", userID),
		)
	}

	c.userID = userID
	return nil
}
