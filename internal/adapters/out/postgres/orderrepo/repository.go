package orderrepo

import (
	"context"
	"errors"

	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/core/domain/model/order"
	"ecom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Requires TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves the order header and its address, returning the aggregate
// rebuilt with the database-assigned ids. Lines are written via AddLine.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := headerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause(
				"orderNumber", dto.OrderNumber, err,
			)
		}
		return nil, err
	}

	addressDTO := addressFromDomain(dto.ID, aggregate.Address())
	if err := r.db.WithContext(ctx).Create(&addressDTO).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, addressDTO, nil)
}

// AddLine saves one line row for a stored order.
func (r *GormOrderRepository) AddLine(ctx context.Context, orderID int64, line order.Line) error {
	dto := lineFromDomain(orderID, line)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists the mutable header fields (status, amount).
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"status": aggregate.Status().String(),
			"amount": aggregate.Amount(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	return nil
}

// GetByID retrieves the full aggregate by id.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return r.loadParts(ctx, dto)
}

// GetByNumber retrieves the full aggregate by order number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", number.String())
		}
		return nil, err
	}

	return r.loadParts(ctx, dto)
}

// Delete removes the order with its address and lines. Invoices pointing at
// the order are detached so billing history survives.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Exec("UPDATE invoices SET order_id = NULL WHERE order_id = ?", id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&LineDTO{}, "order_id = ?", id).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&AddressDTO{}, "order_id = ?", id).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return nil
}

// MaxID returns the highest order id, zero for an empty table.
func (r *GormOrderRepository) MaxID(ctx context.Context) (int64, error) {
	var maxID int64
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(id), 0) FROM orders").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}

	return maxID, nil
}

func (r *GormOrderRepository) loadParts(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var addressDTO AddressDTO
	if err := r.db.WithContext(ctx).First(&addressDTO, "order_id = ?", dto.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", dto.ID)
		}
		return nil, err
	}

	var lineDTOs []LineDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&lineDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, addressDTO, lineDTOs)
}
