// Package accountrepo provides data transfer objects and mapping functions
// for staff account persistence.
package accountrepo

import (
	"time"

	"ecom/internal/core/domain/model/account"
	"ecom/internal/core/domain/model/kernel"
)

// AccountDTO represents the staff account row.
type AccountDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Email          string `gorm:"uniqueIndex;not null"`
	Name           string `gorm:"not null"`
	HashedPassword string `gorm:"not null"`
	IsActive       bool
	ResetCode      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides GORM's default naming convention.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:             a.ID(),
		Email:          a.Email().String(),
		Name:           a.Name(),
		HashedPassword: a.HashedPassword(),
		IsActive:       a.IsActive(),
		ResetCode:      a.ResetCode(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		dto.ID, email, dto.Name, dto.HashedPassword,
		dto.IsActive, dto.ResetCode,
	)
}
