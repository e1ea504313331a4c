package usecase

import (
	"context"

	"pos/src/inventory/application/request"
	"pos/src/inventory/application/response"
	"pos/src/inventory/domain/service"
	"pos/src/shared/infrastructure/metrics"
)

// AddStockUseCase agrega existencias a un producto por nombre.
type AddStockUseCase struct {
	inventory *service.Inventory
}

// NewAddStockUseCase crea una nueva instancia del caso de uso.
func NewAddStockUseCase(inventory *service.Inventory) *AddStockUseCase {
	return &AddStockUseCase{inventory: inventory}
}

// Execute agrega el stock y regresa la existencia resultante.
func (uc *AddStockUseCase) Execute(ctx context.Context, name string, req *request.AddStockRequest) (*response.StockResponse, error) {
	if err := uc.inventory.AddStockByName(ctx, name, req.Quantity); err != nil {
		return nil, err
	}

	metrics.InventoryChanges.WithLabelValues("add_stock").Inc()
	return &response.StockResponse{
		Name:  name,
		Stock: uc.inventory.GetStockByName(name),
	}, nil
}
