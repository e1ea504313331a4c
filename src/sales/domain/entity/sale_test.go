package entity

import (
	"testing"

	inventory "pos/src/inventory/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T, id string, kind inventory.ProductKind, name string, price float64) inventory.Product {
	t.Helper()
	product, err := inventory.NewProduct(id, kind, name, decimal.NewFromFloat(price))
	require.NoError(t, err)
	return product
}

func TestSaleItems(t *testing.T) {
	t.Run("AddProduct_AccumulatesQuantity", func(t *testing.T) {
		sale := NewSale()
		egg := testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0)

		require.NoError(t, sale.AddProduct(egg, decimal.NewFromInt(2)))
		require.NoError(t, sale.AddProduct(egg, decimal.NewFromInt(2)))

		require.Equal(t, 1, sale.ItemCount())
		require.True(t, sale.Quantity(egg.ID).Equal(decimal.NewFromInt(4)))
	})

	t.Run("AddProduct_RejectsNonPositiveQuantity", func(t *testing.T) {
		sale := NewSale()
		egg := testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0)

		require.ErrorIs(t, sale.AddProduct(egg, decimal.Zero), ErrInvalidQuantity)
		require.ErrorIs(t, sale.AddProduct(egg, decimal.NewFromInt(-1)), ErrInvalidQuantity)
		require.Equal(t, 0, sale.ItemCount())
	})

	t.Run("Items_SortedByProductName", func(t *testing.T) {
		sale := NewSale()
		require.NoError(t, sale.AddProduct(testProduct(t, "p-1", inventory.KindByWeight, "Milanesa", 120.0), decimal.NewFromInt(1)))
		require.NoError(t, sale.AddProduct(testProduct(t, "p-2", inventory.KindByWeight, "Bistec", 150.0), decimal.NewFromInt(1)))

		items := sale.Items()
		require.Len(t, items, 2)
		require.Equal(t, "Bistec", items[0].Product.Name)
		require.Equal(t, "Milanesa", items[1].Product.Name)
	})
}

func TestSaleTotals(t *testing.T) {
	t.Run("SubtotalMixesUnitsAndWeight", func(t *testing.T) {
		sale := NewSale()
		egg := testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0)
		steak := testProduct(t, "p-2", inventory.KindByWeight, "Bistec", 150.0)

		// 4 huevos a 3.0 + 0.5 kg de bistec a 150.0 = 87.0
		require.NoError(t, sale.AddProduct(egg, decimal.NewFromInt(4)))
		require.NoError(t, sale.AddProduct(steak, decimal.NewFromFloat(0.5)))

		subtotal := sale.CalculateTotalWithoutDiscount()
		require.True(t, subtotal.Equal(decimal.NewFromFloat(87.0)), "expected 87.0, got %s", subtotal)
	})

	t.Run("TotalIsZeroUntilDiscountApplied", func(t *testing.T) {
		sale := NewSale()
		require.NoError(t, sale.AddProduct(testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0), decimal.NewFromInt(4)))
		require.True(t, sale.Total().IsZero())

		require.NoError(t, sale.ApplyDiscount())
		require.True(t, sale.Total().Equal(decimal.NewFromFloat(12.0)))
	})

	t.Run("ApplyDiscount_UsesCurrentStrategy", func(t *testing.T) {
		sale := NewSale()
		require.NoError(t, sale.AddProduct(testProduct(t, "p-1", inventory.KindByWeight, "Bistec", 150.0), decimal.NewFromInt(1)))

		require.NoError(t, sale.SetStrategy(FrequentCustomerDiscount()))
		require.NoError(t, sale.ApplyDiscount())
		require.True(t, sale.Total().Equal(decimal.NewFromFloat(135.0)))
	})

	t.Run("NilStrategyFallsBackToNoDiscount", func(t *testing.T) {
		sale := NewSale()
		require.NoError(t, sale.AddProduct(testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0), decimal.NewFromInt(2)))

		require.NoError(t, sale.SetStrategy(nil))
		require.NoError(t, sale.ApplyDiscount())
		require.True(t, sale.Total().Equal(decimal.NewFromFloat(6.0)))
	})
}

func TestSaleStateMachine(t *testing.T) {
	t.Run("NewSaleStartsPending", func(t *testing.T) {
		sale := NewSale()
		require.Equal(t, SaleStatusPending, sale.Status())
		require.False(t, sale.Status().Terminal())
	})

	t.Run("Finalize_MovesToPaid", func(t *testing.T) {
		sale := NewSale()
		require.NoError(t, sale.Finalize())
		require.Equal(t, SaleStatusPaid, sale.Status())
		require.True(t, sale.Status().Terminal())
	})

	t.Run("Cancel_MovesToCancelled", func(t *testing.T) {
		sale := NewSale()
		require.NoError(t, sale.Cancel())
		require.Equal(t, SaleStatusCancelled, sale.Status())
		require.True(t, sale.Status().Terminal())
	})

	t.Run("PaidSaleRejectsEveryMutation", func(t *testing.T) {
		sale := NewSale()
		egg := testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0)
		require.NoError(t, sale.AddProduct(egg, decimal.NewFromInt(4)))
		require.NoError(t, sale.ApplyDiscount())
		require.NoError(t, sale.Finalize())

		totalBefore := sale.Total()

		require.ErrorIs(t, sale.AddProduct(egg, decimal.NewFromInt(1)), ErrSaleNotPending)
		require.ErrorIs(t, sale.SetStrategy(FrequentCustomerDiscount()), ErrSaleNotPending)
		require.ErrorIs(t, sale.ApplyDiscount(), ErrSaleNotPending)
		require.ErrorIs(t, sale.Finalize(), ErrSaleNotPending)
		require.ErrorIs(t, sale.Cancel(), ErrSaleNotPending)

		// Nada cambió: ni items, ni total, ni estado.
		require.True(t, sale.Quantity(egg.ID).Equal(decimal.NewFromInt(4)))
		require.True(t, sale.Total().Equal(totalBefore))
		require.Equal(t, SaleStatusPaid, sale.Status())
	})

	t.Run("CancelledSaleRejectsFinalize", func(t *testing.T) {
		sale := NewSale()
		require.NoError(t, sale.Cancel())

		require.ErrorIs(t, sale.Finalize(), ErrSaleNotPending)
		require.ErrorIs(t, sale.Cancel(), ErrSaleNotPending)
		require.Equal(t, SaleStatusCancelled, sale.Status())
	})

	t.Run("QueriesRemainAvailableInTerminalStates", func(t *testing.T) {
		sale := NewSale()
		require.NoError(t, sale.AddProduct(testProduct(t, "p-1", inventory.KindByUnit, "Huevo", 3.0), decimal.NewFromInt(4)))
		require.NoError(t, sale.Cancel())

		require.True(t, sale.CalculateTotalWithoutDiscount().Equal(decimal.NewFromFloat(12.0)))
		require.Len(t, sale.Items(), 1)
	})
}
