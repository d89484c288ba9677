// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence.
package invoicerepo

import (
	"time"

	"ecom/internal/core/domain/model/invoice"
)

// InvoiceDTO represents the invoice row. OrderID is nullable so billing
// history survives order deletion.
type InvoiceDTO struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	InvoiceNumber string `gorm:"uniqueIndex;not null"`
	CustomerName  string `gorm:"not null"`
	IssuedDate    time.Time
	Amount        float64
	Status        string
	OrderID       *int64 `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:            inv.ID(),
		InvoiceNumber: inv.Number(),
		CustomerName:  inv.CustomerName(),
		IssuedDate:    inv.IssuedDate(),
		Amount:        inv.Amount(),
		Status:        inv.Status(),
		OrderID:       inv.OrderID(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	return invoice.RestoreInvoice(
		dto.ID, dto.InvoiceNumber, dto.CustomerName,
		dto.IssuedDate, dto.Amount, dto.Status, dto.OrderID,
	)
}
