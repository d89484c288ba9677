package queries

import (
	"context"
	"database/sql"
	"errors"

	"ecom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler loads one catalog product.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound for unknown ids.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			permalink,
			description,
			sku,
			brand,
			regular_price,
			sale_price,
			tax_rate,
			stock_quantity,
			stock_status,
			low_stock_threshold,
			allow_backorder,
			product_status,
			is_featured
		FROM products
		WHERE id = ?
	`, query.ProductID()).Row()

	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return ProductResponse{}, errs.NewObjectNotFoundError("productId", query.ProductID())
	}
	if err != nil {
		return ProductResponse{}, err
	}

	return product, nil
}
