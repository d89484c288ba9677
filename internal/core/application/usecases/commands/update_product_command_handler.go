package commands

import (
	"context"
)

// UpdateProductCommandHandler applies a partial update to a catalog product.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product patches.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product patch command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()

	p, err := repo.GetByID(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	patch := cmd.Patch()
	if patch.Name != nil {
		if err = p.Rename(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		p.SetDescription(*patch.Description)
	}
	if patch.SKU != nil {
		p.SetSKU(*patch.SKU)
	}
	if patch.Brand != nil {
		p.SetBrand(*patch.Brand)
	}
	if patch.RegularPrice != nil {
		if err = p.SetRegularPrice(*patch.RegularPrice); err != nil {
			return err
		}
	}
	if patch.ClearSalePrice {
		if err = p.SetSalePrice(nil); err != nil {
			return err
		}
	} else if patch.SalePrice != nil {
		if err = p.SetSalePrice(patch.SalePrice); err != nil {
			return err
		}
	}
	if patch.TaxRate != nil {
		if err = p.SetTaxRate(*patch.TaxRate); err != nil {
			return err
		}
	}
	if patch.StockQuantity != nil || patch.StockStatus != nil ||
		patch.LowStockThreshold != nil || patch.AllowBackorder != nil {
		quantity := p.StockQuantity()
		status := p.StockStatus()
		threshold := p.LowStockThreshold()
		backorder := p.AllowBackorder()
		if patch.StockQuantity != nil {
			quantity = *patch.StockQuantity
		}
		if patch.StockStatus != nil {
			status = *patch.StockStatus
		}
		if patch.LowStockThreshold != nil {
			threshold = *patch.LowStockThreshold
		}
		if patch.AllowBackorder != nil {
			backorder = *patch.AllowBackorder
		}
		if err = p.SetStock(quantity, status, threshold, backorder); err != nil {
			return err
		}
	}
	if patch.ProductStatus != nil {
		p.SetProductStatus(*patch.ProductStatus)
	}
	if patch.IsFeatured != nil {
		p.SetFeatured(*patch.IsFeatured)
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
