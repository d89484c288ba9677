package accountrepo

import (
	"context"
	"errors"

	"ecom/internal/core/domain/model/account"
	"ecom/internal/core/domain/model/kernel"
	"ecom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements ports.AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new account, returning it with the database-assigned id.
// A duplicate email surfaces as errs.ErrObjectAlreadyExists.
func (r *GormAccountRepository) Add(ctx context.Context, a *account.Account) (*account.Account, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("email", dto.Email, err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists changes to an existing account. Select("*") forces nil
// reset codes and false flags through, which Updates would otherwise skip.
func (r *GormAccountRepository) Update(ctx context.Context, a *account.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("accountId", dto.ID)
	}

	return nil
}

// GetByID retrieves an account by id.
func (r *GormAccountRepository) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accountId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by normalized email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email kernel.Email) (*account.Account, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
