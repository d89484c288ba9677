package ports

import (
	"context"

	"ecom/internal/core/domain/model/customer"
	"ecom/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
// Emails are unique; Add surfaces a duplicate as errs.ErrObjectAlreadyExists
// so callers can fall back to GetByEmail.
type CustomerRepository interface {
	// Add persists a new customer and returns the stored entity.
	Add(ctx context.Context, c *customer.Customer) (*customer.Customer, error)

	// Update persists changes to an existing customer.
	Update(ctx context.Context, c *customer.Customer) error

	// GetByID retrieves a customer by its identifier.
	GetByID(ctx context.Context, id int64) (*customer.Customer, error)

	// GetByEmail retrieves a customer by its normalized email.
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)

	// GetAll retrieves all customers ordered by id.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Delete removes a customer. Orders referencing it keep their copied
	// shipping data.
	Delete(ctx context.Context, id int64) error
}
