package queries

import (
	"errors"

	"ecom/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// defaultProductPageSize bounds unpaged product listings.
const defaultProductPageSize = 50

// ListProductsQuery retrieves a page of the product catalog.
type ListProductsQuery struct {
	offset int
	limit  int

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a catalog page query. Non-positive limit
// falls back to the default page size; negative offset is clamped to zero.
func NewListProductsQuery(offset, limit int) ListProductsQuery {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultProductPageSize
	}

	return ListProductsQuery{
		offset: offset,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Offset returns the page offset.
func (q ListProductsQuery) Offset() int { return q.offset }

// Limit returns the page size.
func (q ListProductsQuery) Limit() int { return q.limit }

// ProductResponse is the product read model.
type ProductResponse struct {
	ID                int64
	Name              string
	Permalink         string
	Description       string
	SKU               string
	Brand             string
	RegularPrice      float64
	SalePrice         *float64
	EffectivePrice    float64
	TaxRate           float64
	StockQuantity     int
	StockStatus       string
	LowStockThreshold int
	AllowBackorder    bool
	ProductStatus     string
	IsFeatured        bool
}
