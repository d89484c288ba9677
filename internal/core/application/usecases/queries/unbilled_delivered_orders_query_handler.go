package queries

import (
	"context"

	"ecom/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// UnbilledDeliveredOrdersQueryHandler lists delivered orders without an
// invoice row pointing at them.
type UnbilledDeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewUnbilledDeliveredOrdersQueryHandler creates a handler for the
// unbilled-orders query.
func NewUnbilledDeliveredOrdersQueryHandler(db *gorm.DB) UnbilledDeliveredOrdersQueryHandler {
	return UnbilledDeliveredOrdersQueryHandler{db: db}
}

// Handle executes the query ordered by order id.
func (h UnbilledDeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query UnbilledDeliveredOrdersQuery,
) ([]UnbilledOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]UnbilledOrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.order_date,
			c.first_name || ' ' || c.last_name AS customer_name,
			o.amount
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.status = ?
		AND NOT EXISTS (
			SELECT 1 FROM invoices i WHERE i.order_id = o.id
		)
		ORDER BY o.id
	`, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var unbilled UnbilledOrderResponse
		if err = rows.Scan(
			&unbilled.ID,
			&unbilled.OrderNumber,
			&unbilled.OrderDate,
			&unbilled.CustomerName,
			&unbilled.Amount,
		); err != nil {
			return nil, err
		}
		orders = append(orders, unbilled)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
