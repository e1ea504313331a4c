package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("CreatesByWeightProduct", func(t *testing.T) {
		product, err := NewProduct("p-1", KindByWeight, "Bistec", decimal.NewFromFloat(150.0))
		require.NoError(t, err)
		require.Equal(t, "p-1", product.ID)
		require.Equal(t, "Bistec", product.Name)
		require.Equal(t, KindByWeight, product.Kind)
		require.Equal(t, "per kg", product.PriceLabel())
	})

	t.Run("CreatesByUnitProduct", func(t *testing.T) {
		product, err := NewProduct("p-2", KindByUnit, "Huevo", decimal.NewFromFloat(3.0))
		require.NoError(t, err)
		require.Equal(t, KindByUnit, product.Kind)
		require.Equal(t, "per unit", product.PriceLabel())
	})

	t.Run("FailsOnEmptyName", func(t *testing.T) {
		_, err := NewProduct("p-3", KindByUnit, "", decimal.NewFromFloat(3.0))
		require.ErrorIs(t, err, ErrProductNameRequired)
	})

	t.Run("FailsOnNegativePrice", func(t *testing.T) {
		_, err := NewProduct("p-4", KindByWeight, "Costilla", decimal.NewFromFloat(-1.0))
		require.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("AllowsZeroPrice", func(t *testing.T) {
		product, err := NewProduct("p-5", KindByUnit, "Bolsa", decimal.Zero)
		require.NoError(t, err)
		require.True(t, product.UnitPrice.IsZero())
	})

	t.Run("FailsOnUnknownKind", func(t *testing.T) {
		_, err := NewProduct("p-6", ProductKind("BY_DOZEN"), "Huevo", decimal.NewFromFloat(3.0))
		require.ErrorIs(t, err, ErrUnknownProductKind)
	})
}

func TestProductDerivation(t *testing.T) {
	steak, err := NewProduct("p-1", KindByWeight, "Bistec", decimal.NewFromFloat(150.0))
	require.NoError(t, err)

	t.Run("WithName_KeepsIdentityAndPrice", func(t *testing.T) {
		renamed, err := steak.WithName("Bistec de res")
		require.NoError(t, err)
		require.Equal(t, steak.ID, renamed.ID)
		require.True(t, renamed.UnitPrice.Equal(steak.UnitPrice))
		require.Equal(t, "Bistec", steak.Name, "the original value must stay intact")
	})

	t.Run("WithPrice_KeepsIdentityAndName", func(t *testing.T) {
		repriced, err := steak.WithPrice(decimal.NewFromFloat(165.0))
		require.NoError(t, err)
		require.Equal(t, steak.ID, repriced.ID)
		require.Equal(t, steak.Name, repriced.Name)
	})

	t.Run("WithPrice_RejectsNegative", func(t *testing.T) {
		_, err := steak.WithPrice(decimal.NewFromFloat(-10.0))
		require.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestCalculatePrice(t *testing.T) {
	t.Run("MultipliesPriceByQuantity", func(t *testing.T) {
		steak, err := NewProduct("p-1", KindByWeight, "Bistec", decimal.NewFromFloat(150.0))
		require.NoError(t, err)

		price, err := steak.CalculatePrice(decimal.NewFromFloat(0.5))
		require.NoError(t, err)
		require.True(t, price.Equal(decimal.NewFromFloat(75.0)), "expected 75.0, got %s", price)
	})

	t.Run("ZeroQuantityIsFree", func(t *testing.T) {
		egg, err := NewProduct("p-2", KindByUnit, "Huevo", decimal.NewFromFloat(3.0))
		require.NoError(t, err)

		price, err := egg.CalculatePrice(decimal.Zero)
		require.NoError(t, err)
		require.True(t, price.IsZero())
	})

	t.Run("FailsOnNegativeQuantity", func(t *testing.T) {
		egg, err := NewProduct("p-3", KindByUnit, "Huevo", decimal.NewFromFloat(3.0))
		require.NoError(t, err)

		_, err = egg.CalculatePrice(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, ErrNegativeQuantity)
	})
}
