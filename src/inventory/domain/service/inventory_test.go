package service

import (
	"context"
	"errors"
	"testing"

	"pos/src/inventory/domain/entity"
	"pos/src/inventory/infrastructure/persistence"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestInventory(t *testing.T) *Inventory {
	t.Helper()
	inv, err := NewInventory(context.Background(), persistence.NewProductMemoryRepository())
	require.NoError(t, err)
	return inv
}

func addTestProduct(t *testing.T, inv *Inventory, id string, kind entity.ProductKind, name string, price float64) entity.Product {
	t.Helper()
	product, err := inv.AddProduct(context.Background(), id, kind, name, decimal.NewFromFloat(price))
	require.NoError(t, err)
	return product
}

// failingListener siempre falla al notificar.
type failingListener struct{}

func (failingListener) Notify(string) error { return errors.New("listener down") }

// panickingListener entra en pánico al notificar.
type panickingListener struct{}

func (panickingListener) Notify(string) error { panic("listener exploded") }

// recordingListener acumula los mensajes recibidos.
type recordingListener struct {
	messages []string
}

func (l *recordingListener) Notify(message string) error {
	l.messages = append(l.messages, message)
	return nil
}

func TestInventoryCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("AddProduct_StartsWithZeroStock", func(t *testing.T) {
		inv := newTestInventory(t)
		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)
		require.True(t, inv.GetStock(steak).IsZero())
	})

	t.Run("AddProduct_FailsOnDuplicateName", func(t *testing.T) {
		inv := newTestInventory(t)
		addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)

		_, err := inv.AddProduct(ctx, "p-2", entity.KindByWeight, "bistec", decimal.NewFromFloat(120.0))
		require.ErrorIs(t, err, entity.ErrDuplicateName)
	})

	t.Run("FindByName_IsCaseInsensitive", func(t *testing.T) {
		inv := newTestInventory(t)
		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)

		found, ok := inv.FindByName("BISTEC")
		require.True(t, ok)
		require.Equal(t, steak.ID, found.ID)
	})

	t.Run("RemoveProduct_ReturnsFalseWhenAbsent", func(t *testing.T) {
		inv := newTestInventory(t)
		removed, err := inv.RemoveProduct(ctx, "Fantasma")
		require.NoError(t, err)
		require.False(t, removed)
	})

	t.Run("RemoveProduct_DeletesCatalogEntry", func(t *testing.T) {
		inv := newTestInventory(t)
		addTestProduct(t, inv, "p-1", entity.KindByUnit, "Huevo", 3.0)

		removed, err := inv.RemoveProduct(ctx, "Huevo")
		require.NoError(t, err)
		require.True(t, removed)

		_, ok := inv.FindByName("Huevo")
		require.False(t, ok)
	})

	t.Run("ProductsSortedByName_OrdersAlphabetically", func(t *testing.T) {
		inv := newTestInventory(t)
		addTestProduct(t, inv, "p-1", entity.KindByWeight, "Milanesa", 120.0)
		addTestProduct(t, inv, "p-2", entity.KindByUnit, "huevo", 3.0)
		addTestProduct(t, inv, "p-3", entity.KindByWeight, "Bistec", 150.0)

		products := inv.ProductsSortedByName()
		require.Len(t, products, 3)
		require.Equal(t, "Bistec", products[0].Name)
		require.Equal(t, "huevo", products[1].Name)
		require.Equal(t, "Milanesa", products[2].Name)
	})

	t.Run("ProductByIndex_FollowsSortedOrder", func(t *testing.T) {
		inv := newTestInventory(t)
		addTestProduct(t, inv, "p-1", entity.KindByWeight, "Milanesa", 120.0)
		addTestProduct(t, inv, "p-2", entity.KindByWeight, "Bistec", 150.0)

		first, ok := inv.ProductByIndex(0)
		require.True(t, ok)
		require.Equal(t, "Bistec", first.Name)

		_, ok = inv.ProductByIndex(2)
		require.False(t, ok)
		_, ok = inv.ProductByIndex(-1)
		require.False(t, ok)
	})
}

func TestInventoryStock(t *testing.T) {
	ctx := context.Background()

	t.Run("AddAndReduce_RoundTrip", func(t *testing.T) {
		inv := newTestInventory(t)
		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)

		require.NoError(t, inv.AddStock(ctx, steak, decimal.NewFromFloat(20.0)))
		require.NoError(t, inv.ReduceStock(ctx, steak, decimal.NewFromFloat(3.0)))

		require.True(t, inv.GetStock(steak).Equal(decimal.NewFromFloat(17.0)))
	})

	t.Run("AddStock_RejectsNonPositiveQuantity", func(t *testing.T) {
		inv := newTestInventory(t)
		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)

		require.ErrorIs(t, inv.AddStock(ctx, steak, decimal.Zero), entity.ErrInvalidQuantity)
		require.ErrorIs(t, inv.AddStock(ctx, steak, decimal.NewFromInt(-5)), entity.ErrInvalidQuantity)
	})

	t.Run("AddStockByName_FailsOnUnknownProduct", func(t *testing.T) {
		inv := newTestInventory(t)
		err := inv.AddStockByName(ctx, "Fantasma", decimal.NewFromInt(1))
		require.ErrorIs(t, err, entity.ErrProductNotFound)
	})

	t.Run("ReduceStock_InsufficientLeavesStockUnchanged", func(t *testing.T) {
		inv := newTestInventory(t)
		egg := addTestProduct(t, inv, "p-1", entity.KindByUnit, "Huevo", 3.0)
		require.NoError(t, inv.AddStock(ctx, egg, decimal.NewFromInt(10)))

		err := inv.ReduceStock(ctx, egg, decimal.NewFromInt(11))
		require.ErrorIs(t, err, entity.ErrInsufficientStock)
		require.True(t, inv.GetStock(egg).Equal(decimal.NewFromInt(10)))
	})

	t.Run("GetStock_UnknownProductIsZero", func(t *testing.T) {
		inv := newTestInventory(t)
		ghost, err := entity.NewProduct("p-x", entity.KindByUnit, "Fantasma", decimal.NewFromInt(1))
		require.NoError(t, err)

		require.True(t, inv.GetStock(ghost).IsZero())
		require.True(t, inv.GetStockByName("Fantasma").IsZero())
	})
}

func TestInventoryUpdates(t *testing.T) {
	ctx := context.Background()

	t.Run("Rename_PreservesIdentityPriceAndStock", func(t *testing.T) {
		inv := newTestInventory(t)
		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)
		require.NoError(t, inv.AddStock(ctx, steak, decimal.NewFromFloat(5.0)))

		renamed, err := inv.RenameProduct(ctx, "Bistec", "Bistec de res")
		require.NoError(t, err)
		require.Equal(t, steak.ID, renamed.ID)
		require.True(t, renamed.UnitPrice.Equal(steak.UnitPrice))
		require.True(t, inv.GetStock(renamed).Equal(decimal.NewFromFloat(5.0)))

		// El nombre viejo deja de resolver; la referencia vieja por ID sigue viva.
		_, ok := inv.FindByName("Bistec")
		require.False(t, ok)
		require.True(t, inv.GetStock(steak).Equal(decimal.NewFromFloat(5.0)))
	})

	t.Run("Rename_FailsWhenNewNameTaken", func(t *testing.T) {
		inv := newTestInventory(t)
		addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)
		addTestProduct(t, inv, "p-2", entity.KindByWeight, "Milanesa", 120.0)

		_, err := inv.RenameProduct(ctx, "Bistec", "milanesa")
		require.ErrorIs(t, err, entity.ErrDuplicateName)
	})

	t.Run("UpdatePrice_PreservesNameAndStock", func(t *testing.T) {
		inv := newTestInventory(t)
		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)
		require.NoError(t, inv.AddStock(ctx, steak, decimal.NewFromFloat(2.0)))

		repriced, err := inv.UpdatePrice(ctx, "Bistec", decimal.NewFromFloat(165.0))
		require.NoError(t, err)
		require.Equal(t, steak.ID, repriced.ID)
		require.Equal(t, "Bistec", repriced.Name)
		require.True(t, repriced.UnitPrice.Equal(decimal.NewFromFloat(165.0)))
		require.True(t, inv.GetStock(repriced).Equal(decimal.NewFromFloat(2.0)))
	})

	t.Run("UpdatePrice_RejectsNegativePrice", func(t *testing.T) {
		inv := newTestInventory(t)
		addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)

		_, err := inv.UpdatePrice(ctx, "Bistec", decimal.NewFromFloat(-1.0))
		require.ErrorIs(t, err, entity.ErrInvalidPrice)
	})
}

func TestInventoryListeners(t *testing.T) {
	ctx := context.Background()

	t.Run("NotifiesEveryRegisteredListener", func(t *testing.T) {
		inv := newTestInventory(t)
		first := &recordingListener{}
		second := &recordingListener{}
		inv.Register(first)
		inv.Register(second)

		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)
		require.NoError(t, inv.AddStock(ctx, steak, decimal.NewFromFloat(20.0)))

		require.Len(t, first.messages, 2)
		require.Equal(t, first.messages, second.messages)
		require.Contains(t, first.messages[1], "Added to inventory: Bistec")
		require.Contains(t, first.messages[1], "20")
	})

	t.Run("FailingListenerDoesNotAbortOperation", func(t *testing.T) {
		inv := newTestInventory(t)
		after := &recordingListener{}
		inv.Register(failingListener{})
		inv.Register(after)

		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)
		require.NoError(t, inv.AddStock(ctx, steak, decimal.NewFromFloat(1.0)))

		require.True(t, inv.GetStock(steak).Equal(decimal.NewFromFloat(1.0)))
		require.Len(t, after.messages, 2)
	})

	t.Run("PanickingListenerIsIsolated", func(t *testing.T) {
		inv := newTestInventory(t)
		after := &recordingListener{}
		inv.Register(panickingListener{})
		inv.Register(after)

		require.NotPanics(t, func() {
			addTestProduct(t, inv, "p-1", entity.KindByUnit, "Huevo", 3.0)
		})
		require.Len(t, after.messages, 1)
	})
}

func TestInventoryPersistence(t *testing.T) {
	ctx := context.Background()

	t.Run("ReloadsCatalogFromRepository", func(t *testing.T) {
		repo := persistence.NewProductMemoryRepository()

		inv, err := NewInventory(ctx, repo)
		require.NoError(t, err)
		steak := addTestProduct(t, inv, "p-1", entity.KindByWeight, "Bistec", 150.0)
		require.NoError(t, inv.AddStock(ctx, steak, decimal.NewFromFloat(7.5)))

		// Un inventario nuevo sobre el mismo repositorio ve el mismo estado.
		reloaded, err := NewInventory(ctx, repo)
		require.NoError(t, err)

		found, ok := reloaded.FindByName("Bistec")
		require.True(t, ok)
		require.Equal(t, steak.ID, found.ID)
		require.True(t, reloaded.GetStock(found).Equal(decimal.NewFromFloat(7.5)))
	})
}
