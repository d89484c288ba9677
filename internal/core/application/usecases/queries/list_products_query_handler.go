package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListProductsQueryHandler lists a catalog page.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for catalog pages.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the catalog page query ordered by id.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY id
		OFFSET ? LIMIT ?
	`, query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// scanProduct reads one product row; shared with the single-product lookup.
func scanProduct(row interface{ Scan(dest ...any) error }) (ProductResponse, error) {
	var product ProductResponse
	var salePrice sql.NullFloat64

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Permalink,
		&product.Description,
		&product.SKU,
		&product.Brand,
		&product.RegularPrice,
		&salePrice,
		&product.TaxRate,
		&product.StockQuantity,
		&product.StockStatus,
		&product.LowStockThreshold,
		&product.AllowBackorder,
		&product.ProductStatus,
		&product.IsFeatured,
	); err != nil {
		return ProductResponse{}, err
	}

	product.EffectivePrice = product.RegularPrice
	if salePrice.Valid {
		value := salePrice.Float64
		product.SalePrice = &value
		product.EffectivePrice = value
	}
	return product, nil
}
