package ports

import (
	"context"

	"ecom/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the persistence contract for invoices.
type InvoiceRepository interface {
	// Add persists a new invoice and returns the stored entity.
	Add(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error)

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, inv *invoice.Invoice) error

	// GetByID retrieves an invoice by its identifier.
	GetByID(ctx context.Context, id int64) (*invoice.Invoice, error)

	// GetAll retrieves all invoices ordered by id.
	GetAll(ctx context.Context) ([]*invoice.Invoice, error)

	// ExistsForOrder reports whether any invoice references the order.
	ExistsForOrder(ctx context.Context, orderID int64) (bool, error)

	// Delete removes an invoice.
	Delete(ctx context.Context, id int64) error
}
