package commands

import (
	"context"
	"errors"

	"ecom/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds a product to the catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command and returns the stored
// product. A duplicate permalink surfaces as errs.ErrObjectAlreadyExists.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(cmd.Name(), cmd.Permalink(), cmd.RegularPrice())
	if err != nil {
		return nil, err
	}

	attrs := cmd.Attributes()
	if err = errors.Join(
		p.SetSalePrice(attrs.SalePrice),
		p.SetTaxRate(attrs.TaxRate),
		p.SetStock(attrs.StockQuantity, attrs.StockStatus, attrs.LowStockThreshold, attrs.AllowBackorder),
	); err != nil {
		return nil, err
	}
	p.SetDescription(attrs.Description)
	p.SetSKU(attrs.SKU)
	p.SetBrand(attrs.Brand)
	p.SetProductStatus(attrs.ProductStatus)
	p.SetFeatured(attrs.IsFeatured)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.ProductRepository().Add(ctx, p)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return stored, nil
}
