// Package stats models the per-menu, per-day order statistics used for reporting.
//
// A Rollup is a derived view of the order table kept in the document store.
// It is created by the first order of a (menu, calendar day) pair and only
// ever incremented afterwards; cancellations do not decrement it.
package stats

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"catering/internal/pkg/errs"
)

// Rollup is the pre-aggregated summary of one menu on one calendar day.
type Rollup struct {
	MenuID     uuid.UUID
	MenuTitle  string
	Day        time.Time
	OrderCount int64
	Revenue    decimal.Decimal
	UpdatedAt  time.Time
}

// Increment is one order's contribution to a Rollup.
type Increment struct {
	MenuID    uuid.UUID
	MenuTitle string
	DayStart  time.Time
	DayEnd    time.Time
	Revenue   decimal.Decimal
}

// NewIncrement computes the day bounds of serviceDate in loc and returns the
// delta to apply to the matching rollup.
func NewIncrement(menuID uuid.UUID, menuTitle string, serviceDate time.Time, revenue decimal.Decimal, loc *time.Location) (Increment, error) {
	if menuID == uuid.Nil {
		return Increment{}, errs.NewValueIsRequiredError("menu id")
	}
	if serviceDate.IsZero() {
		return Increment{}, errs.NewValueIsRequiredError("service date")
	}
	if revenue.IsNegative() {
		return Increment{}, errs.NewValueIsOutOfRangeError("revenue", revenue, 0, nil)
	}

	start, end := DayBounds(serviceDate, loc)
	return Increment{
		MenuID:    menuID,
		MenuTitle: menuTitle,
		DayStart:  start,
		DayEnd:    end,
		Revenue:   revenue,
	}, nil
}

// DayBounds returns [start, end) of the calendar day of date in loc.
// Only the year, month and day of date are used, so a date-only value stored
// at midnight UTC maps to the same local day everywhere.
func DayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
