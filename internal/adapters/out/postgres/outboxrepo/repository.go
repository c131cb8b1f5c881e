// Package outboxrepo stores order events until the statistics projection has
// consumed them.
package outboxrepo

import (
	"context"
	"time"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const lastErrorMaxLength = 500

// EventDTO is one row of order_events.
// A row is pending while both ProcessedAt and AbandonedAt are nil.
type EventDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	MenuID      uuid.UUID       `gorm:"type:uuid;not null"`
	MenuTitle   string          `gorm:"type:varchar(100);not null"`
	ServiceDate time.Time       `gorm:"type:date;not null"`
	Revenue     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	OccurredAt  time.Time       `gorm:"not null"`
	Attempts    int             `gorm:"not null;default:0"`
	LastError   *string         `gorm:"type:varchar(500)"`
	ProcessedAt *time.Time      `gorm:"index"`
	AbandonedAt *time.Time
}

func (EventDTO) TableName() string {
	return "order_events"
}

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, event order.CreatedEvent) error {
	dto := EventDTO{
		OrderID:     event.OrderID,
		MenuID:      event.MenuID,
		MenuTitle:   event.MenuTitle,
		ServiceDate: event.ServiceDate,
		Revenue:     event.Revenue,
		OccurredAt:  event.OccurredAt,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchPending locks pending rows with FOR UPDATE SKIP LOCKED, so parallel
// projection workers never pick the same event. The lock lasts until the
// surrounding transaction ends.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("processed_at IS NULL AND abandoned_at IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			ID:       dto.ID,
			Attempts: dto.Attempts,
			Event: order.CreatedEvent{
				OrderID:     dto.OrderID,
				MenuID:      dto.MenuID,
				MenuTitle:   dto.MenuTitle,
				ServiceDate: order.DateOnly(dto.ServiceDate),
				Revenue:     dto.Revenue,
				OccurredAt:  dto.OccurredAt,
			},
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&EventDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{"processed_at": at, "last_error": nil}).Error
}

func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id int64, cause error, abandon bool) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	if runes := []rune(msg); len(runes) > lastErrorMaxLength {
		msg = string(runes[:lastErrorMaxLength])
	}

	values := map[string]any{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": msg,
	}
	if abandon {
		values["abandoned_at"] = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Model(&EventDTO{}).Where("id = ?", id).Updates(values).Error
}
