package pricing_test

import (
	"testing"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, s string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(s)
	require.NoError(t, err)
	return a
}

func newEngine() pricing.Engine {
	return pricing.NewEngine(pricing.NewFlatDeliveryFeePolicy(decimal.NewFromInt(5), "Bordeaux"))
}

func TestEngine_Quote_Scenarios(t *testing.T) {
	home := mustAddress(t, "12 rue Sainte-Catherine, 33000 Bordeaux")

	t.Run("discounted order delivered at home in the home city", func(t *testing.T) {
		q := newEngine().Quote(pricing.Input{
			UnitPrice:       decimal.NewFromInt(20),
			MinHeadcount:    4,
			Headcount:       9,
			ServiceAddress:  home,
			CustomerAddress: home,
			CustomerCity:    "Bordeaux",
		})

		assert.True(t, q.BasePrice.Equal(decimal.NewFromInt(180)), q.BasePrice.String())
		assert.True(t, q.Discount.Equal(decimal.NewFromInt(18)), q.Discount.String())
		assert.True(t, q.MenuPrice.Equal(decimal.NewFromInt(162)), q.MenuPrice.String())
		assert.True(t, q.DeliveryFee.IsZero())
		assert.True(t, q.Total().Equal(decimal.NewFromInt(162)))
	})

	t.Run("minimum headcount delivered elsewhere", func(t *testing.T) {
		q := newEngine().Quote(pricing.Input{
			UnitPrice:       decimal.NewFromInt(20),
			MinHeadcount:    4,
			Headcount:       4,
			ServiceAddress:  mustAddress(t, "1 place de la Bourse, 33000 Bordeaux"),
			CustomerAddress: home,
			CustomerCity:    "Bordeaux",
		})

		assert.True(t, q.MenuPrice.Equal(decimal.NewFromInt(80)), q.MenuPrice.String())
		assert.True(t, q.DeliveryFee.Equal(decimal.NewFromInt(5)), q.DeliveryFee.String())
		assert.True(t, q.Total().Equal(decimal.NewFromInt(85)))
	})
}

func TestEngine_Quote_DiscountThreshold(t *testing.T) {
	home := mustAddress(t, "3 cours de l'Intendance")
	unit := decimal.RequireFromString("12.50")

	for minimum := 1; minimum <= 10; minimum++ {
		for headcount := minimum; headcount <= minimum+10; headcount++ {
			q := newEngine().Quote(pricing.Input{
				UnitPrice:       unit,
				MinHeadcount:    minimum,
				Headcount:       headcount,
				ServiceAddress:  home,
				CustomerAddress: home,
				CustomerCity:    "Bordeaux",
			})

			factor := decimal.NewFromInt(1)
			if headcount >= minimum+5 {
				factor = decimal.RequireFromString("0.9")
			}
			expected := unit.Mul(decimal.NewFromInt(int64(headcount))).Mul(factor).Round(2)
			assert.True(t, q.MenuPrice.Equal(expected),
				"min=%d headcount=%d: got %s want %s", minimum, headcount, q.MenuPrice, expected)
		}
	}
}

func TestFlatDeliveryFeePolicy(t *testing.T) {
	home := mustAddress(t, "12 rue Sainte-Catherine")
	policy := pricing.NewFlatDeliveryFeePolicy(decimal.NewFromInt(5), "Bordeaux")

	testCases := []struct {
		name     string
		service  kernel.Address
		city     string
		expected decimal.Decimal
	}{
		{"same address home city", home, "Bordeaux", decimal.Zero},
		{"same address differently cased", mustAddress(t, "12  RUE sainte-catherine "), " bordeaux", decimal.Zero},
		{"other address home city", mustAddress(t, "4 quai Richelieu"), "Bordeaux", decimal.NewFromInt(5)},
		{"same address other city", home, "Mérignac", decimal.NewFromInt(5)},
		{"other address other city", mustAddress(t, "4 quai Richelieu"), "Pessac", decimal.NewFromInt(5)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fee := policy.DeliveryFee(pricing.Input{
				ServiceAddress:  tc.service,
				CustomerAddress: home,
				CustomerCity:    tc.city,
			})
			assert.True(t, fee.Equal(tc.expected), "got %s", fee)
		})
	}
}

func TestFlatDeliveryFeePolicy_CustomerWithoutPostalAddress(t *testing.T) {
	policy := pricing.NewFlatDeliveryFeePolicy(decimal.NewFromInt(5), "Bordeaux")

	fee := policy.DeliveryFee(pricing.Input{
		ServiceAddress:  mustAddress(t, "12 rue Sainte-Catherine"),
		CustomerAddress: kernel.Address{},
		CustomerCity:    "Bordeaux",
	})

	assert.True(t, fee.Equal(decimal.NewFromInt(5)), "got %s", fee)
}

type fixedFee struct{ fee decimal.Decimal }

func (f fixedFee) DeliveryFee(pricing.Input) decimal.Decimal { return f.fee }

func TestEngine_UsesPluggableFeePolicy(t *testing.T) {
	engine := pricing.NewEngine(fixedFee{fee: decimal.RequireFromString("7.333")})

	q := engine.Quote(pricing.Input{UnitPrice: decimal.NewFromInt(10), MinHeadcount: 1, Headcount: 1})

	assert.True(t, q.DeliveryFee.Equal(decimal.RequireFromString("7.33")), q.DeliveryFee.String())
	assert.True(t, q.Total().Equal(decimal.RequireFromString("17.33")))
}

func TestQualifiesForDiscount(t *testing.T) {
	assert.False(t, pricing.QualifiesForDiscount(8, 4))
	assert.True(t, pricing.QualifiesForDiscount(9, 4))
	assert.True(t, pricing.QualifiesForDiscount(30, 4))
}
