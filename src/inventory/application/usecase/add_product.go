package usecase

import (
	"context"
	"log"

	"pos/src/inventory/application/request"
	"pos/src/inventory/application/response"
	"pos/src/inventory/domain/entity"
	"pos/src/inventory/domain/service"
	"pos/src/shared/infrastructure/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddProductUseCase da de alta un producto nuevo con stock cero.
type AddProductUseCase struct {
	inventory *service.Inventory
}

// NewAddProductUseCase crea una nueva instancia del caso de uso.
func NewAddProductUseCase(inventory *service.Inventory) *AddProductUseCase {
	return &AddProductUseCase{inventory: inventory}
}

// Execute da de alta el producto.
func (uc *AddProductUseCase) Execute(ctx context.Context, req *request.AddProductRequest) (*response.ProductResponse, error) {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	product, err := uc.inventory.AddProduct(ctx, id, entity.ProductKind(req.Kind), req.Name, req.Price)
	if err != nil {
		return nil, err
	}

	metrics.InventoryChanges.WithLabelValues("add_product").Inc()
	log.Printf("Producto dado de alta: %s (%s)", product.Name, product.ID)

	return &response.ProductResponse{
		ID:         product.ID,
		Name:       product.Name,
		Kind:       string(product.Kind),
		UnitPrice:  product.UnitPrice,
		PriceLabel: product.PriceLabel(),
		Stock:      decimal.Zero,
	}, nil
}
