// Package menurepo reads catering menus. Menus are maintained by the catalog
// back office; orders only reference them.
package menurepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuDTO is the subset of the menus table the order lifecycle reads.
type MenuDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title        string          `gorm:"type:varchar(100);not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	MinHeadcount int             `gorm:"not null"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Get returns the menu snapshot used to price and link an order.
func (r *GormMenuRepository) Get(ctx context.Context, id uuid.UUID) (order.MenuSnapshot, error) {
	var dto MenuDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.MenuSnapshot{}, errs.NewObjectNotFoundError("menu", id)
		}
		return order.MenuSnapshot{}, err
	}

	return order.MenuSnapshot{
		ID:           dto.ID,
		Title:        dto.Title,
		UnitPrice:    dto.UnitPrice,
		MinHeadcount: dto.MinHeadcount,
	}, nil
}
