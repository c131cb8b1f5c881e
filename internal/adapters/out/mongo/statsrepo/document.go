// Package statsrepo keeps the per-menu, per-day order rollups in MongoDB.
//
// One document exists per (menuId, day). Increments are a single upserting
// UpdateOne against a unique index, so concurrent projections of orders for
// the same menu and day never lose an update.
package statsrepo

import (
	"time"

	"catering/internal/core/domain/model/stats"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the collection holding rollup documents.
const CollectionName = "menu_daily_stats"

// RollupDocument is the stored form of stats.Rollup.
type RollupDocument struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	MenuID     string               `bson:"menuId"`
	MenuTitle  string               `bson:"menuTitle"`
	Day        time.Time            `bson:"day"`
	OrderCount int64                `bson:"orderCount"`
	Revenue    primitive.Decimal128 `bson:"revenue"`
	CreatedAt  time.Time            `bson:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt"`
}

func toDomain(doc RollupDocument) (stats.Rollup, error) {
	menuID, err := uuid.Parse(doc.MenuID)
	if err != nil {
		return stats.Rollup{}, err
	}
	revenue, err := decimal.NewFromString(doc.Revenue.String())
	if err != nil {
		return stats.Rollup{}, err
	}

	return stats.Rollup{
		MenuID:     menuID,
		MenuTitle:  doc.MenuTitle,
		Day:        doc.Day,
		OrderCount: doc.OrderCount,
		Revenue:    revenue,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}
