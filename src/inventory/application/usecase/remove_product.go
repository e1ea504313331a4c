package usecase

import (
	"context"
	"log"

	"pos/src/inventory/application/response"
	"pos/src/inventory/domain/service"
	"pos/src/shared/infrastructure/metrics"
)

// RemoveProductUseCase elimina un producto del catálogo. Si el producto
// no existe la operación no falla: regresa removed=false.
type RemoveProductUseCase struct {
	inventory *service.Inventory
}

// NewRemoveProductUseCase crea una nueva instancia del caso de uso.
func NewRemoveProductUseCase(inventory *service.Inventory) *RemoveProductUseCase {
	return &RemoveProductUseCase{inventory: inventory}
}

// Execute elimina el producto por nombre.
func (uc *RemoveProductUseCase) Execute(ctx context.Context, name string) (*response.RemoveProductResponse, error) {
	removed, err := uc.inventory.RemoveProduct(ctx, name)
	if err != nil {
		return nil, err
	}

	if removed {
		metrics.InventoryChanges.WithLabelValues("remove_product").Inc()
		log.Printf("Producto eliminado: %s", name)
	}
	return &response.RemoveProductResponse{
		Name:    name,
		Removed: removed,
	}, nil
}
