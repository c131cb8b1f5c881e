package queries

import (
	"context"

	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or ObjectNotFoundError. An order owned by someone
// else is reported as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	p := query.Principal()
	return getOrderView(ctx, h.db, query.OrderID(), p.IsStaff(), p.UserID)
}

func getOrderView(ctx context.Context, db *gorm.DB, orderID uuid.UUID, anyOwner bool, ownerID uuid.UUID) (OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(
		orderViewSelect+`WHERE o.id = ? AND (? OR o.owner_id = ?)`,
		orderID, anyOwner, ownerID,
	).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", orderID)
	}

	return scanOrderView(rows)
}
