// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"ecom/internal/core/domain/model/customer"
	"ecom/internal/core/domain/model/kernel"
)

// CustomerDTO represents the customer row. Email carries the unique index
// that backs find-or-create resolution.
type CustomerDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	FirstName        string `gorm:"not null"`
	LastName         string `gorm:"not null"`
	Email            string `gorm:"uniqueIndex;not null"`
	PhoneCountryCode string
	PhoneNumber      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides GORM's default naming convention.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:               c.ID(),
		FirstName:        c.FirstName(),
		LastName:         c.LastName(),
		Email:            c.Email().String(),
		PhoneCountryCode: c.PhoneCountryCode(),
		PhoneNumber:      c.PhoneNumber(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		dto.ID, dto.FirstName, dto.LastName, email,
		dto.PhoneCountryCode, dto.PhoneNumber,
	)
}
