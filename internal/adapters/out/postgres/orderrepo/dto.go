// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money columns are fixed-point numerics, the status is stored by name.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number           string          `gorm:"column:order_number;type:varchar(32);uniqueIndex;not null"`
	OwnerID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	ServiceDate      time.Time       `gorm:"type:date;not null"`
	DeliveryTime     string          `gorm:"type:varchar(5);not null"`
	Headcount        int             `gorm:"not null"`
	ServiceAddress   string          `gorm:"type:varchar(255);not null"`
	MenuPrice        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryFee      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status           string          `gorm:"type:varchar(32);index;not null"`
	MaterialLoan     bool            `gorm:"not null;default:false"`
	MaterialReturned bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time       `gorm:"index;not null"`
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderMenuDTO links an order to the menu it was placed against.
// The link is written once, at creation.
type OrderMenuDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuID  uuid.UUID `gorm:"type:uuid;index;not null"`
}

func (OrderMenuDTO) TableName() string {
	return "order_menus"
}

// orderRow is an order joined with its current menu.
type orderRow struct {
	OrderDTO
	MenuID       uuid.UUID
	MenuTitle    string
	UnitPrice    decimal.Decimal
	MinHeadcount int
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) (OrderDTO, OrderMenuDTO) {
	return OrderDTO{
			ID:               o.ID(),
			Number:           o.Number().String(),
			OwnerID:          o.OwnerID(),
			ServiceDate:      o.ServiceDate(),
			DeliveryTime:     o.DeliveryTime().String(),
			Headcount:        o.Headcount(),
			ServiceAddress:   o.Address().String(),
			MenuPrice:        o.MenuPrice(),
			DeliveryFee:      o.DeliveryFee(),
			Status:           o.Status().String(),
			MaterialLoan:     o.MaterialLoan(),
			MaterialReturned: o.MaterialReturned(),
			CreatedAt:        o.CreatedAt(),
		}, OrderMenuDTO{
			OrderID: o.ID(),
			MenuID:  o.Menu().ID,
		}
}

// toDomain rebuilds the aggregate using RestoreOrder.
func toDomain(row orderRow) (*order.Order, error) {
	number, err := order.ParseNumber(row.Number)
	if err != nil {
		return nil, err
	}

	deliveryTime, err := kernel.NewDeliveryTime(row.DeliveryTime)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(row.ServiceAddress)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:           row.ID,
		Number:       number,
		CreatedAt:    row.CreatedAt,
		ServiceDate:  order.DateOnly(row.ServiceDate),
		DeliveryTime: deliveryTime,
		Menu: order.MenuSnapshot{
			ID:           row.MenuID,
			Title:        row.MenuTitle,
			UnitPrice:    row.UnitPrice,
			MinHeadcount: row.MinHeadcount,
		},
		Headcount:    row.Headcount,
		Address:      address,
		MenuPrice:    row.MenuPrice,
		DeliveryFee:  row.DeliveryFee,
		Status:       status,
		MaterialLoan: row.MaterialLoan,
		MaterialBack: row.MaterialReturned,
		OwnerID:      row.OwnerID,
	})
}
