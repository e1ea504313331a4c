package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDiscountStrategies(t *testing.T) {
	total := decimal.NewFromFloat(100.0)

	t.Run("NoDiscount_IsIdentity", func(t *testing.T) {
		require.True(t, NoDiscount()(total).Equal(total))
		require.True(t, NoDiscount()(decimal.Zero).IsZero())
	})

	t.Run("PercentageDiscount_SubtractsFraction", func(t *testing.T) {
		quarter := PercentageDiscount(decimal.NewFromFloat(0.25))
		require.True(t, quarter(total).Equal(decimal.NewFromFloat(75.0)))
	})

	t.Run("PercentageDiscount_ZeroRateKeepsTotal", func(t *testing.T) {
		require.True(t, PercentageDiscount(decimal.Zero)(total).Equal(total))
	})

	t.Run("FrequentCustomer_TakesTenPercent", func(t *testing.T) {
		require.True(t, FrequentCustomerDiscount()(total).Equal(decimal.NewFromFloat(90.0)))
	})
}

func TestSelectStrategy(t *testing.T) {
	total := decimal.NewFromFloat(200.0)

	t.Run("FrequentCustomerWinsOverPercent", func(t *testing.T) {
		strategy := SelectStrategy(true, 50)
		require.True(t, strategy(total).Equal(decimal.NewFromFloat(180.0)))
	})

	t.Run("PercentScaleIsZeroToHundred", func(t *testing.T) {
		strategy := SelectStrategy(false, 25)
		require.True(t, strategy(total).Equal(decimal.NewFromFloat(150.0)))
	})

	t.Run("NonPositivePercentMeansNoDiscount", func(t *testing.T) {
		require.True(t, SelectStrategy(false, 0)(total).Equal(total))
		require.True(t, SelectStrategy(false, -10)(total).Equal(total))
	})
}
