package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListUserOrdersQueryHandler reads a customer's orders with their menu
// snapshot fields.
type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice when the user has no orders.
func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		orderViewSelect+`WHERE o.owner_id = ? ORDER BY o.created_at DESC, o.order_number DESC`,
		query.Principal().UserID,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		v, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
