// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"time"

	"ecom/internal/core/domain/model/product"
)

// ProductDTO represents the product row. Permalink is the unique,
// human-readable catalog key.
type ProductDTO struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Name              string `gorm:"not null"`
	Permalink         string `gorm:"uniqueIndex;not null"`
	Description       string
	SKU               string `gorm:"column:sku"`
	Brand             string
	RegularPrice      float64 `gorm:"not null"`
	SalePrice         *float64
	TaxRate           float64
	StockQuantity     int
	StockStatus       string
	LowStockThreshold int
	AllowBackorder    bool
	ProductStatus     string
	IsFeatured        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides GORM's default naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:                p.ID(),
		Name:              p.Name(),
		Permalink:         p.Permalink(),
		Description:       p.Description(),
		SKU:               p.SKU(),
		Brand:             p.Brand(),
		RegularPrice:      p.RegularPrice(),
		SalePrice:         p.SalePrice(),
		TaxRate:           p.TaxRate(),
		StockQuantity:     p.StockQuantity(),
		StockStatus:       p.StockStatus(),
		LowStockThreshold: p.LowStockThreshold(),
		AllowBackorder:    p.AllowBackorder(),
		ProductStatus:     p.ProductStatus(),
		IsFeatured:        p.IsFeatured(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID,
		dto.Name, dto.Permalink, dto.Description, dto.SKU, dto.Brand,
		dto.RegularPrice, dto.SalePrice, dto.TaxRate,
		dto.StockQuantity, dto.StockStatus, dto.LowStockThreshold,
		dto.AllowBackorder, dto.ProductStatus, dto.IsFeatured,
	)
}
