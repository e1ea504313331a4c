package usecase

import (
	"context"
	"log"

	"pos/src/inventory/application/request"
	"pos/src/inventory/application/response"
	"pos/src/inventory/domain/service"
	"pos/src/shared/infrastructure/metrics"
)

// RenameProductUseCase cambia el nombre de un producto conservando su
// identidad, precio y existencias.
type RenameProductUseCase struct {
	inventory *service.Inventory
}

// NewRenameProductUseCase crea una nueva instancia del caso de uso.
func NewRenameProductUseCase(inventory *service.Inventory) *RenameProductUseCase {
	return &RenameProductUseCase{inventory: inventory}
}

// Execute renombra el producto.
func (uc *RenameProductUseCase) Execute(ctx context.Context, currentName string, req *request.RenameProductRequest) (*response.ProductResponse, error) {
	product, err := uc.inventory.RenameProduct(ctx, currentName, req.NewName)
	if err != nil {
		return nil, err
	}

	metrics.InventoryChanges.WithLabelValues("rename_product").Inc()
	log.Printf("Producto renombrado: %s -> %s", currentName, product.Name)

	return &response.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Kind:       string(product.Kind),
		UnitPrice:  product.UnitPrice,
		PriceLabel: product.PriceLabel(),
		Stock:      uc.inventory.GetStock(product),
	}, nil
}

// UpdatePriceUseCase cambia el precio de un producto conservando su
// identidad, nombre y existencias.
type UpdatePriceUseCase struct {
	inventory *service.Inventory
}

// NewUpdatePriceUseCase crea una nueva instancia del caso de uso.
func NewUpdatePriceUseCase(inventory *service.Inventory) *UpdatePriceUseCase {
	return &UpdatePriceUseCase{inventory: inventory}
}

// Execute actualiza el precio del producto.
func (uc *UpdatePriceUseCase) Execute(ctx context.Context, name string, req *request.UpdatePriceRequest) (*response.ProductResponse, error) {
	product, err := uc.inventory.UpdatePrice(ctx, name, req.NewPrice)
	if err != nil {
		return nil, err
	}

	metrics.InventoryChanges.WithLabelValues("update_price").Inc()
	return &response.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Kind:       string(product.Kind),
		UnitPrice:  product.UnitPrice,
		PriceLabel: product.PriceLabel(),
		Stock:      uc.inventory.GetStock(product),
	}, nil
}
