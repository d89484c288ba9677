// Package customer contains the customer entity. Customers are keyed by
// email and resolved with find-or-create semantics during order creation;
// their lifecycle is independent of the orders that reference them.
package customer

import (
	"errors"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a person orders are placed for. Email is the identity key.
type Customer struct {
	id               int64
	firstName        string
	lastName         string
	email            kernel.Email
	phoneCountryCode string
	phoneNumber      string
	isConstructed    bool
}

// NewCustomer creates a customer. First name, last name and a valid email
// are required; phone fields are optional.
func NewCustomer(firstName, lastName string, email kernel.Email, phoneCountryCode, phoneNumber string) (*Customer, error) {
	if firstName == "" {
		return nil, errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return nil, errs.NewValueIsRequiredError("lastName")
	}
	if err := email.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		firstName:        firstName,
		lastName:         lastName,
		email:            email,
		phoneCountryCode: phoneCountryCode,
		phoneNumber:      phoneNumber,
		isConstructed:    true,
	}, nil
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(id int64, firstName, lastName string, email kernel.Email, phoneCountryCode, phoneNumber string) (*Customer, error) {
	c, err := NewCustomer(firstName, lastName, email, phoneCountryCode, phoneNumber)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Rename updates the customer's name. Both parts remain required.
func (c *Customer) Rename(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.firstName = firstName
	c.lastName = lastName
	return nil
}

// ChangePhone updates the customer's phone contact.
func (c *Customer) ChangePhone(countryCode, number string) {
	c.phoneCountryCode = countryCode
	c.phoneNumber = number
}

// ID returns the persistence identifier, zero until stored.
func (c *Customer) ID() int64 { return c.id }

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string { return c.firstName }

// LastName returns the customer's last name.
func (c *Customer) LastName() string { return c.lastName }

// Email returns the customer's identity email.
func (c *Customer) Email() kernel.Email { return c.email }

// PhoneCountryCode returns the phone country code.
func (c *Customer) PhoneCountryCode() string { return c.phoneCountryCode }

// PhoneNumber returns the phone number.
func (c *Customer) PhoneNumber() string { return c.phoneNumber }
