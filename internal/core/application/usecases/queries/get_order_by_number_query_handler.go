package queries

import (
	"context"
	"database/sql"
	"errors"

	"ecom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler loads the full order read model with direct
// SQL for optimal read performance in the CQRS pattern.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for single-order lookups.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// matches the number (and scope).
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (GetOrderByNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.order_date,
			o.payment_method,
			o.status,
			o.amount,
			c.id AS customer_id,
			c.first_name,
			c.last_name,
			c.email,
			c.phone_country_code,
			c.phone_number,
			a.building,
			a.apartment_no,
			a.house_no,
			a.street,
			a.city,
			a.country
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN addresses a ON a.order_id = o.id
		WHERE o.order_number = ?
		AND (? = 0 OR o.user_id = ?)
	`, query.Number().String(), query.UserID(), query.UserID()).Row()

	var response GetOrderByNumberQueryResponse
	err := row.Scan(
		&response.ID,
		&response.OrderNumber,
		&response.OrderDate,
		&response.PaymentMethod,
		&response.Status,
		&response.Amount,
		&response.Customer.ID,
		&response.Customer.FirstName,
		&response.Customer.LastName,
		&response.Customer.Email,
		&response.Customer.PhoneCountryCode,
		&response.Customer.PhoneNumber,
		&response.Address.Building,
		&response.Address.ApartmentNo,
		&response.Address.HouseNo,
		&response.Address.Street,
		&response.Address.City,
		&response.Address.Country,
	)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderByNumberQueryResponse{}, errs.NewObjectNotFoundError(
			"orderNumber", query.Number().String(),
		)
	}
	if err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.product_id,
			COALESCE(p.name, ''),
			COALESCE(p.permalink, ''),
			l.quantity,
			l.discount,
			l.subtotal
		FROM order_products l
		LEFT JOIN products p ON p.id = l.product_id
		WHERE l.order_id = ?
		ORDER BY l.id
	`, response.ID).Rows()
	if err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		if err = rows.Scan(
			&line.ProductID,
			&line.ProductName,
			&line.Permalink,
			&line.Quantity,
			&line.Discount,
			&line.Subtotal,
		); err != nil {
			return GetOrderByNumberQueryResponse{}, err
		}
		response.Lines = append(response.Lines, line)
	}
	if err = rows.Err(); err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}

	return response, nil
}
