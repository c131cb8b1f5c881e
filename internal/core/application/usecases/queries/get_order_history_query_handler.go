package queries

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// trackAction names the operation refused on an order that cannot be tracked yet.
const trackAction = "tracked"

// HistoryEntryView is one step of an order timeline. PreviousStatus is nil
// for the creation entry.
type HistoryEntryView struct {
	ID             int64
	PreviousStatus *order.Status
	NewStatus      order.Status
	ActorID        uuid.UUID
	ChangedAt      time.Time
}

// GetOrderHistoryQueryHandler reads the append-only status history.
//
// Customers can follow their order once staff accepted it; a pending or
// cancelled order has no timeline for them. Staff may always read it.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p := query.Principal()
	current, err := h.currentStatus(ctx, query.OrderID(), p.IsStaff(), p.UserID)
	if err != nil {
		return nil, err
	}
	if !p.IsStaff() && !current.IsTrackable() {
		return nil, errs.NewTransitionIsNotAllowedError(current.String(), trackAction)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			previous_status,
			new_status,
			actor_id,
			changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntryView, 0)
	for rows.Next() {
		var e HistoryEntryView
		var previous *string
		var next string

		if err = rows.Scan(&e.ID, &previous, &next, &e.ActorID, &e.ChangedAt); err != nil {
			return nil, err
		}

		if previous != nil {
			st, parseErr := order.ParseStatus(*previous)
			if parseErr != nil {
				return nil, parseErr
			}
			e.PreviousStatus = &st
		}
		if e.NewStatus, err = order.ParseStatus(next); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (h GetOrderHistoryQueryHandler) currentStatus(
	ctx context.Context, orderID uuid.UUID, anyOwner bool, ownerID uuid.UUID,
) (order.Status, error) {
	var status string
	res := h.db.WithContext(ctx).Raw(
		`SELECT status FROM orders WHERE id = ? AND (? OR owner_id = ?)`,
		orderID, anyOwner, ownerID,
	).Scan(&status)
	if res.Error != nil {
		return order.Unknown, res.Error
	}
	if res.RowsAffected == 0 {
		return order.Unknown, errs.NewObjectNotFoundError("order", orderID)
	}
	return order.ParseStatus(status)
}
