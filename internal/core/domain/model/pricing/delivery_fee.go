package pricing

import (
	"github.com/shopspring/decimal"

	"catering/internal/core/domain/model/kernel"
)

// FlatDeliveryFeePolicy charges a fixed fee whenever the order is delivered
// somewhere other than the customer's own address inside the home city.
// It stands in for distance-based pricing.
type FlatDeliveryFeePolicy struct {
	fee      decimal.Decimal
	homeCity string
}

func NewFlatDeliveryFeePolicy(fee decimal.Decimal, homeCity string) FlatDeliveryFeePolicy {
	return FlatDeliveryFeePolicy{fee: fee, homeCity: homeCity}
}

// DeliveryFee returns the flat fee when the service address differs from the
// customer's postal address or the customer lives outside the home city.
// A customer without a postal address is charged the fee.
func (p FlatDeliveryFeePolicy) DeliveryFee(in Input) decimal.Decimal {
	if in.CustomerAddress.Validate() != nil ||
		!in.ServiceAddress.Equal(in.CustomerAddress) ||
		!kernel.SameCity(in.CustomerCity, p.homeCity) {
		return p.fee
	}
	return decimal.Zero
}
