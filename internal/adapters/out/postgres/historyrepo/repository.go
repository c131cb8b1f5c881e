// Package historyrepo persists the append-only status trail of orders.
package historyrepo

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryEntryDTO is one row of order_status_history. The serial id breaks
// ties between entries sharing a timestamp.
type HistoryEntryDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index:idx_history_order_changed,priority:1;not null"`
	PreviousStatus *string   `gorm:"type:varchar(32)"`
	NewStatus      string    `gorm:"type:varchar(32);not null"`
	ActorID        uuid.UUID `gorm:"type:uuid;not null"`
	ChangedAt      time.Time `gorm:"index:idx_history_order_changed,priority:2;not null"`
}

func (HistoryEntryDTO) TableName() string {
	return "order_status_history"
}

// GormHistoryRepository implements HistoryRepository using GORM.
// It only inserts and reads; there is no update or delete path.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append stores one transition and returns the generated entry id.
func (r *GormHistoryRepository) Append(ctx context.Context, orderID uuid.UUID, t order.Transition) (int64, error) {
	dto := HistoryEntryDTO{
		OrderID:   orderID,
		NewStatus: t.To.String(),
		ActorID:   t.ActorID,
		ChangedAt: t.At,
	}
	if t.From != nil {
		prev := t.From.String()
		dto.PreviousStatus = &prev
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}
	return dto.ID, nil
}

// List returns the trail of an order, oldest first.
func (r *GormHistoryRepository) List(ctx context.Context, orderID uuid.UUID) ([]order.HistoryEntry, error) {
	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("changed_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toDomain(dto HistoryEntryDTO) (order.HistoryEntry, error) {
	next, err := order.ParseStatus(dto.NewStatus)
	if err != nil {
		return order.HistoryEntry{}, err
	}

	var prev *order.Status
	if dto.PreviousStatus != nil {
		st, err := order.ParseStatus(*dto.PreviousStatus)
		if err != nil {
			return order.HistoryEntry{}, err
		}
		prev = &st
	}

	return order.HistoryEntry{
		ID:      dto.ID,
		OrderID: dto.OrderID,
		Transition: order.Transition{
			From:    prev,
			To:      next,
			ActorID: dto.ActorID,
			At:      dto.ChangedAt,
		},
	}, nil
}
