package queries

import (
	"context"
	"database/sql"
	"errors"

	"ecom/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListCustomersQueryHandler lists all customers.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomersQueryHandler creates a handler for customer listings.
func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle executes the customer listing ordered by id.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]CustomerResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone_country_code,
			phone_number
		FROM customers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var customer CustomerResponse
		if err = rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Email,
			&customer.PhoneCountryCode,
			&customer.PhoneNumber,
		); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// GetCustomerQueryHandler loads one customer.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer lookups.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound for unknown ids.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone_country_code,
			phone_number
		FROM customers
		WHERE id = ?
	`, query.CustomerID()).Row()

	var customer CustomerResponse
	err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.PhoneCountryCode,
		&customer.PhoneNumber,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return CustomerResponse{}, errs.NewObjectNotFoundError("customerId", query.CustomerID())
	}
	if err != nil {
		return CustomerResponse{}, err
	}

	return customer, nil
}
