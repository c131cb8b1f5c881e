// Package pricing computes the price of a catering order.
//
// The engine is a pure function of its inputs: it never fails and never
// touches storage. Callers validate the headcount against the menu minimum
// before asking for a quote.
//
// Pricing rules:
//   - base = unit price × headcount
//   - a 10% reduction applies to the base when headcount >= minimum + 5
//   - the delivery fee comes from a DeliveryFeePolicy
//   - total = discounted base + delivery fee
//
// Example:
//
//	engine := pricing.NewEngine(pricing.NewFlatDeliveryFeePolicy(decimal.NewFromInt(5), "Bordeaux"))
//	quote := engine.Quote(pricing.Input{
//	    UnitPrice:       decimal.NewFromInt(20),
//	    MinHeadcount:    4,
//	    Headcount:       9,
//	    ServiceAddress:  serviceAddress,
//	    CustomerAddress: postalAddress,
//	    CustomerCity:    "Bordeaux",
//	})
//	quote.Total() // 162.00
package pricing

import (
	"github.com/shopspring/decimal"

	"catering/internal/core/domain/model/kernel"
)

const (
	// DiscountHeadcountMargin is how many guests above the menu minimum unlock the discount.
	DiscountHeadcountMargin = 5
	moneyPlaces             = 2
)

// DiscountRate is the binary reduction applied to the base price.
var DiscountRate = decimal.NewFromFloat(0.10)

// Input carries everything the engine needs for one quote.
type Input struct {
	UnitPrice       decimal.Decimal
	MinHeadcount    int
	Headcount       int
	ServiceAddress  kernel.Address
	CustomerAddress kernel.Address
	CustomerCity    string
}

// Quote is the result of pricing an order.
type Quote struct {
	BasePrice   decimal.Decimal
	Discount    decimal.Decimal
	MenuPrice   decimal.Decimal
	DeliveryFee decimal.Decimal
}

// Total is the discounted menu price plus the delivery fee.
func (q Quote) Total() decimal.Decimal {
	return q.MenuPrice.Add(q.DeliveryFee)
}

// DeliveryFeePolicy decides the delivery fee of an order.
// Implementations must be pure; a geodistance policy can replace the flat one
// without changing the engine.
type DeliveryFeePolicy interface {
	DeliveryFee(in Input) decimal.Decimal
}

// Engine computes quotes.
type Engine struct {
	fees DeliveryFeePolicy
}

func NewEngine(fees DeliveryFeePolicy) Engine {
	return Engine{fees: fees}
}

// Quote prices the order described by in.
func (e Engine) Quote(in Input) Quote {
	base := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Headcount)))

	discount := decimal.Zero
	if QualifiesForDiscount(in.Headcount, in.MinHeadcount) {
		discount = base.Mul(DiscountRate)
	}

	fee := decimal.Zero
	if e.fees != nil {
		fee = e.fees.DeliveryFee(in)
	}

	return Quote{
		BasePrice:   base.Round(moneyPlaces),
		Discount:    discount.Round(moneyPlaces),
		MenuPrice:   base.Sub(discount).Round(moneyPlaces),
		DeliveryFee: fee.Round(moneyPlaces),
	}
}

// QualifiesForDiscount reports whether headcount reaches minimum + DiscountHeadcountMargin.
func QualifiesForDiscount(headcount, minHeadcount int) bool {
	return headcount >= minHeadcount+DiscountHeadcountMargin
}
