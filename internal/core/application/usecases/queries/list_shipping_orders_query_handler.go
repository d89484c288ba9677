package queries

import (
	"context"

	"ecom/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListShippingOrdersQueryHandler lists non-cancelled orders with addresses.
type ListShippingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListShippingOrdersQueryHandler creates a handler for the shipping view.
func NewListShippingOrdersQueryHandler(db *gorm.DB) ListShippingOrdersQueryHandler {
	return ListShippingOrdersQueryHandler{db: db}
}

// Handle executes the shipping listing, oldest first so the desk works the
// backlog in order.
func (h ListShippingOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListShippingOrdersQuery,
) ([]ShippingOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ShippingOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.order_date,
			c.first_name || ' ' || c.last_name AS customer_name,
			o.status,
			a.building,
			a.apartment_no,
			a.house_no,
			a.street,
			a.city,
			a.country
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN addresses a ON a.order_id = o.id
		WHERE o.status != ?
		ORDER BY o.id
	`, order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipping ShippingOrderResponse
		if err = rows.Scan(
			&shipping.ID,
			&shipping.OrderNumber,
			&shipping.OrderDate,
			&shipping.CustomerName,
			&shipping.Status,
			&shipping.Address.Building,
			&shipping.Address.ApartmentNo,
			&shipping.Address.HouseNo,
			&shipping.Address.Street,
			&shipping.Address.City,
			&shipping.Address.Country,
		); err != nil {
			return nil, err
		}
		orders = append(orders, shipping)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
