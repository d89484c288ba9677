package queries

import (
	"context"

	"gorm.io/gorm"
)

// FilterOrdersQueryHandler lists order summaries with optional filters.
type FilterOrdersQueryHandler struct {
	db *gorm.DB
}

// NewFilterOrdersQueryHandler creates a handler for filtered order listings.
func NewFilterOrdersQueryHandler(db *gorm.DB) FilterOrdersQueryHandler {
	return FilterOrdersQueryHandler{db: db}
}

// Handle executes the listing. An empty filter returns all orders in scope,
// newest first.
func (h FilterOrdersQueryHandler) Handle(
	ctx context.Context,
	query FilterOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.order_date,
			c.first_name || ' ' || c.last_name AS customer_name,
			o.payment_method,
			o.status,
			o.amount
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE (? = 0 OR o.user_id = ?)
		AND (? = '' OR o.status = ?)
		AND (? = '' OR (c.first_name || ' ' || c.last_name) ILIKE '%' || ? || '%')
		ORDER BY o.id DESC
	`,
		query.UserID(), query.UserID(),
		query.Status(), query.Status(),
		query.CustomerName(), query.CustomerName(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummaryResponse
		if err = rows.Scan(
			&summary.ID,
			&summary.OrderNumber,
			&summary.OrderDate,
			&summary.CustomerName,
			&summary.PaymentMethod,
			&summary.Status,
			&summary.Amount,
		); err != nil {
			return nil, err
		}
		orders = append(orders, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
