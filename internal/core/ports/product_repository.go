package ports

import (
	"context"

	"ecom/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and returns the stored entity.
	Add(ctx context.Context, p *product.Product) (*product.Product, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, p *product.Product) error

	// GetByID retrieves a product by its identifier.
	GetByID(ctx context.Context, id int64) (*product.Product, error)

	// GetAll retrieves all products ordered by id.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete removes a product from the catalog. Existing order lines keep
	// their priced snapshot and are unaffected.
	Delete(ctx context.Context, id int64) error
}
