// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read optimized models straight from the
// stores.
package queries

import (
	"database/sql"
	"time"

	"catering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is an order joined with the menu it was placed against.
type OrderView struct {
	ID               uuid.UUID
	Number           string
	OwnerID          uuid.UUID
	MenuID           uuid.UUID
	MenuTitle        string
	UnitPrice        decimal.Decimal
	ServiceDate      time.Time
	DeliveryTime     string
	Headcount        int
	ServiceAddress   string
	MenuPrice        decimal.Decimal
	DeliveryFee      decimal.Decimal
	Status           order.Status
	MaterialLoan     bool
	MaterialReturned bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Total is the amount the customer pays.
func (v OrderView) Total() decimal.Decimal {
	return v.MenuPrice.Add(v.DeliveryFee)
}

const orderViewSelect = `
	SELECT
		o.id,
		o.order_number,
		o.owner_id,
		m.id,
		m.title,
		m.unit_price,
		o.service_date,
		o.delivery_time,
		o.headcount,
		o.service_address,
		o.menu_price,
		o.delivery_fee,
		o.status,
		o.material_loan,
		o.material_returned,
		o.created_at,
		o.updated_at
	FROM orders o
	JOIN order_menus om ON om.order_id = o.id
	JOIN menus m ON m.id = om.menu_id
`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var v OrderView
	var status string

	err := rows.Scan(
		&v.ID,
		&v.Number,
		&v.OwnerID,
		&v.MenuID,
		&v.MenuTitle,
		&v.UnitPrice,
		&v.ServiceDate,
		&v.DeliveryTime,
		&v.Headcount,
		&v.ServiceAddress,
		&v.MenuPrice,
		&v.DeliveryFee,
		&status,
		&v.MaterialLoan,
		&v.MaterialReturned,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	v.Status, err = order.ParseStatus(status)
	if err != nil {
		return OrderView{}, err
	}
	return v, nil
}
