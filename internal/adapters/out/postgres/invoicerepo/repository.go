package invoicerepo

import (
	"context"
	"errors"

	"ecom/internal/core/domain/model/invoice"
	"ecom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Add saves a new invoice, returning it with the database-assigned id.
// A duplicate invoice number surfaces as errs.ErrObjectAlreadyExists.
func (r *GormInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) (*invoice.Invoice, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(inv)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("invoiceNumber", dto.InvoiceNumber, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists changes to an existing invoice.
func (r *GormInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	dto := fromDomain(inv)
	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoiceId", dto.ID)
	}

	return nil
}

// GetByID retrieves an invoice by id.
func (r *GormInvoiceRepository) GetByID(ctx context.Context, id int64) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoiceId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all invoices ordered by id.
func (r *GormInvoiceRepository) GetAll(ctx context.Context) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// ExistsForOrder reports whether any invoice references the given order.
func (r *GormInvoiceRepository) ExistsForOrder(ctx context.Context, orderID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes an invoice row.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&InvoiceDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoiceId", id)
	}

	return nil
}
