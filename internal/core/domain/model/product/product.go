// Package product contains the product catalog entity. Products are owned by
// the catalog; the order workflow reads them (price, identity) but never
// mutates them — stock is not decremented on order creation.
package product

import (
	"errors"
	"fmt"

	"ecom/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog item. The effective selling price is the sale price
// when one is set, otherwise the regular price.
type Product struct {
	id                int64
	name              string
	permalink         string
	description       string
	sku               string
	brand             string
	regularPrice      float64
	salePrice         *float64
	taxRate           float64
	stockQuantity     int
	stockStatus       string
	lowStockThreshold int
	allowBackorder    bool
	productStatus     string
	isFeatured        bool
	isConstructed     bool
}

// NewProduct creates a product with the required attributes. Optional
// attributes are set afterwards through the setters.
func NewProduct(name, permalink string, regularPrice float64) (*Product, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if permalink == "" {
		return nil, errs.NewValueIsRequiredError("permalink")
	}
	if regularPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"regularPrice",
			fmt.Errorf("%f is negative", regularPrice),
		)
	}

	return &Product{
		name:          name,
		permalink:     permalink,
		regularPrice:  regularPrice,
		stockStatus:   "In Stock",
		productStatus: "Draft",
		isConstructed: true,
	}, nil
}

// RestoreProduct rebuilds a product from persistence.
func RestoreProduct(
	id int64,
	name, permalink, description, sku, brand string,
	regularPrice float64,
	salePrice *float64,
	taxRate float64,
	stockQuantity int,
	stockStatus string,
	lowStockThreshold int,
	allowBackorder bool,
	productStatus string,
	isFeatured bool,
) (*Product, error) {
	p, err := NewProduct(name, permalink, regularPrice)
	if err != nil {
		return nil, err
	}
	if err := p.SetSalePrice(salePrice); err != nil {
		return nil, err
	}

	p.id = id
	p.description = description
	p.sku = sku
	p.brand = brand
	p.taxRate = taxRate
	p.stockQuantity = stockQuantity
	p.stockStatus = stockStatus
	p.lowStockThreshold = lowStockThreshold
	p.allowBackorder = allowBackorder
	p.productStatus = productStatus
	p.isFeatured = isFeatured
	return p, nil
}

// Validate ensures the product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// EffectivePrice returns the sale price when set, otherwise the regular price.
func (p *Product) EffectivePrice() float64 {
	if p.salePrice != nil {
		return *p.salePrice
	}
	return p.regularPrice
}

// SetSalePrice sets or clears the sale price. A nil value removes the sale.
func (p *Product) SetSalePrice(salePrice *float64) error {
	if salePrice != nil && *salePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"salePrice",
			fmt.Errorf("%f is negative", *salePrice),
		)
	}
	p.salePrice = salePrice
	return nil
}

// SetRegularPrice updates the regular price.
func (p *Product) SetRegularPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"regularPrice",
			fmt.Errorf("%f is negative", price),
		)
	}
	p.regularPrice = price
	return nil
}

// Rename updates the product name.
func (p *Product) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// SetDescription updates the long description.
func (p *Product) SetDescription(description string) { p.description = description }

// SetSKU updates the stock keeping unit code.
func (p *Product) SetSKU(sku string) { p.sku = sku }

// SetBrand updates the brand.
func (p *Product) SetBrand(brand string) { p.brand = brand }

// SetTaxRate updates the tax rate applied on top of the price.
func (p *Product) SetTaxRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"taxRate",
			fmt.Errorf("%f is negative", rate),
		)
	}
	p.taxRate = rate
	return nil
}

// SetStock updates the inventory fields.
func (p *Product) SetStock(quantity int, status string, lowStockThreshold int, allowBackorder bool) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stockQuantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	p.stockQuantity = quantity
	if status != "" {
		p.stockStatus = status
	}
	p.lowStockThreshold = lowStockThreshold
	p.allowBackorder = allowBackorder
	return nil
}

// SetProductStatus updates the catalog publication status (e.g. Draft, Published).
func (p *Product) SetProductStatus(status string) {
	if status != "" {
		p.productStatus = status
	}
}

// SetFeatured toggles the featured flag.
func (p *Product) SetFeatured(featured bool) { p.isFeatured = featured }

// ID returns the persistence identifier, zero until stored.
func (p *Product) ID() int64 { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Permalink returns the unique catalog permalink.
func (p *Product) Permalink() string { return p.permalink }

// Description returns the long description.
func (p *Product) Description() string { return p.description }

// SKU returns the stock keeping unit code.
func (p *Product) SKU() string { return p.sku }

// Brand returns the brand.
func (p *Product) Brand() string { return p.brand }

// RegularPrice returns the list price.
func (p *Product) RegularPrice() float64 { return p.regularPrice }

// SalePrice returns the sale price, nil when no sale is active.
func (p *Product) SalePrice() *float64 { return p.salePrice }

// TaxRate returns the tax rate.
func (p *Product) TaxRate() float64 { return p.taxRate }

// StockQuantity returns the units on hand.
func (p *Product) StockQuantity() int { return p.stockQuantity }

// StockStatus returns the human-readable stock status.
func (p *Product) StockStatus() string { return p.stockStatus }

// LowStockThreshold returns the restock alert threshold.
func (p *Product) LowStockThreshold() int { return p.lowStockThreshold }

// AllowBackorder reports whether orders may exceed stock.
func (p *Product) AllowBackorder() bool { return p.allowBackorder }

// ProductStatus returns the catalog publication status.
func (p *Product) ProductStatus() string { return p.productStatus }

// IsFeatured reports whether the product is featured.
func (p *Product) IsFeatured() bool { return p.isFeatured }
