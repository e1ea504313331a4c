package entity

import (
	"testing"

	inventory "pos/src/inventory/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func closedSale(t *testing.T, product inventory.Product, quantity decimal.Decimal) *Sale {
	t.Helper()
	sale := NewSale()
	require.NoError(t, sale.AddProduct(product, quantity))
	require.NoError(t, sale.ApplyDiscount())
	require.NoError(t, sale.Finalize())
	return sale
}

func TestSalesHistory(t *testing.T) {
	t.Run("Add_RejectsNilSale", func(t *testing.T) {
		history := NewSalesHistory()
		require.ErrorIs(t, history.Add(nil), ErrNilSale)
		require.Equal(t, 0, history.Len())
	})

	t.Run("List_ReturnsSnapshot", func(t *testing.T) {
		history := NewSalesHistory()
		egg := testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0)
		require.NoError(t, history.Add(closedSale(t, egg, decimal.NewFromInt(2))))

		snapshot := history.List()
		require.Len(t, snapshot, 1)

		// Mutar la instantánea no toca el libro interno.
		snapshot[0] = nil
		require.NotNil(t, history.List()[0])
	})

	t.Run("TotalRevenue_SumsClosedSales", func(t *testing.T) {
		history := NewSalesHistory()
		egg := testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0)
		steak := testProduct(t, "p-2", inventory.KindByWeight, "Bistec", 150.0)

		require.NoError(t, history.Add(closedSale(t, egg, decimal.NewFromInt(4))))      // 12.0
		require.NoError(t, history.Add(closedSale(t, steak, decimal.NewFromFloat(0.5)))) // 75.0

		require.Equal(t, 2, history.Len())
		require.True(t, history.TotalRevenue().Equal(decimal.NewFromFloat(87.0)))
	})

	t.Run("EmptyHistoryHasZeroRevenue", func(t *testing.T) {
		history := NewSalesHistory()
		require.True(t, history.TotalRevenue().IsZero())
	})
}
