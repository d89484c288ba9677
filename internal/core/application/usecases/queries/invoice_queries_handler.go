package queries

import (
	"context"
	"database/sql"
	"errors"

	"ecom/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListInvoicesQueryHandler lists all invoices.
type ListInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewListInvoicesQueryHandler creates a handler for invoice listings.
func NewListInvoicesQueryHandler(db *gorm.DB) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{db: db}
}

// Handle executes the invoice listing, newest first.
func (h ListInvoicesQueryHandler) Handle(
	ctx context.Context,
	query ListInvoicesQuery,
) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]InvoiceResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.invoice_number,
			i.customer_name,
			i.issued_date,
			i.amount,
			i.status,
			i.order_id,
			COALESCE(o.order_number, '')
		FROM invoices i
		LEFT JOIN orders o ON o.id = i.order_id
		ORDER BY i.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		invoice, scanErr := scanInvoice(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		invoices = append(invoices, invoice)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

// GetInvoiceQueryHandler loads one invoice.
type GetInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceQueryHandler creates a handler for single-invoice lookups.
func NewGetInvoiceQueryHandler(db *gorm.DB) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound for unknown ids.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.invoice_number,
			i.customer_name,
			i.issued_date,
			i.amount,
			i.status,
			i.order_id,
			COALESCE(o.order_number, '')
		FROM invoices i
		LEFT JOIN orders o ON o.id = i.order_id
		WHERE i.id = ?
	`, query.InvoiceID()).Row()

	invoice, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return InvoiceResponse{}, errs.NewObjectNotFoundError("invoiceId", query.InvoiceID())
	}
	if err != nil {
		return InvoiceResponse{}, err
	}

	return invoice, nil
}

// scanInvoice reads one invoice row; shared between listing and lookup.
func scanInvoice(row interface{ Scan(dest ...any) error }) (InvoiceResponse, error) {
	var invoice InvoiceResponse
	var orderID sql.NullInt64

	if err := row.Scan(
		&invoice.ID,
		&invoice.InvoiceNumber,
		&invoice.CustomerName,
		&invoice.IssuedDate,
		&invoice.Amount,
		&invoice.Status,
		&orderID,
		&invoice.OrderNumber,
	); err != nil {
		return InvoiceResponse{}, err
	}

	if orderID.Valid {
		value := orderID.Int64
		invoice.OrderID = &value
	}
	return invoice, nil
}
