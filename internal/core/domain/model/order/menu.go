package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catering/internal/pkg/errs"
)

// MenuSnapshot is the part of a menu an order is bound to. The link is fixed
// at creation; later menu edits do not reprice existing orders except through
// a headcount change.
type MenuSnapshot struct {
	ID           uuid.UUID
	Title        string
	UnitPrice    decimal.Decimal
	MinHeadcount int
}

func (m MenuSnapshot) Validate() error {
	if m.ID == uuid.Nil {
		return errs.NewValueIsRequiredError("menu_id")
	}
	if m.UnitPrice.IsNegative() {
		return errs.NewValueIsOutOfRangeError("menu unit price", m.UnitPrice, 0, nil)
	}
	if m.MinHeadcount < 1 {
		return errs.NewValueIsOutOfRangeError("menu minimum headcount", m.MinHeadcount, 1, nil)
	}
	return nil
}
