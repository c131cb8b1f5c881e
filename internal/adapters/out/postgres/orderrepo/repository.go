package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"catering/internal/core/domain/model/order"
	"catering/internal/core/ports"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectOrderWithMenu = `
	orders.*,
	menus.id AS menu_id,
	menus.title AS menu_title,
	menus.unit_price AS unit_price,
	menus.min_headcount AS min_headcount`

// GormOrderRepository implements OrderRepository using GORM.
// Status transitions recorded on the aggregate are flushed to the history
// trail by Add and Update, on the same connection as the order row.
type GormOrderRepository struct {
	db      *gorm.DB
	history historyAppender
}

// historyAppender writes status history entries.
type historyAppender interface {
	Append(ctx context.Context, orderID uuid.UUID, t order.Transition) (int64, error)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, history historyAppender) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		history: history,
	}
}

// Add saves a new order, its menu link and its creation transition.
// The inserts run in a nested transaction (a savepoint when called inside a
// unit of work), so a number collision leaves the outer transaction usable.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, link := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dto).Error; err != nil {
			return err
		}
		return tx.Create(&link).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ports.ErrOrderNumberTaken, dto.Number)
	}
	if err != nil {
		return err
	}

	return r.flushTransitions(ctx, aggregate)
}

// Update saves the mutable columns of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("service_date", "delivery_time", "headcount", "menu_price", "delivery_fee",
			"status", "material_loan", "material_returned", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	return r.flushTransitions(ctx, aggregate)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.first(ctx, id, r.db.WithContext(ctx).Where("orders.id = ?", id))
}

// GetOwned retrieves an order by ID if ownerID placed it.
func (r *GormOrderRepository) GetOwned(ctx context.Context, id, ownerID uuid.UUID) (*order.Order, error) {
	return r.first(ctx, id, r.db.WithContext(ctx).Where("orders.id = ? AND orders.owner_id = ?", id, ownerID))
}

func (r *GormOrderRepository) first(_ context.Context, id uuid.UUID, scope *gorm.DB) (*order.Order, error) {
	var row orderRow
	err := scope.Model(&OrderDTO{}).
		Select(selectOrderWithMenu).
		Joins("JOIN order_menus ON order_menus.order_id = orders.id").
		Joins("JOIN menus ON menus.id = order_menus.menu_id").
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(row)
}

func (r *GormOrderRepository) flushTransitions(ctx context.Context, aggregate *order.Order) error {
	for _, t := range aggregate.Transitions() {
		if _, err := r.history.Append(ctx, aggregate.ID(), t); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
	}
	aggregate.ClearTransitions()
	return nil
}
