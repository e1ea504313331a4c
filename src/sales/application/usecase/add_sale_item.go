package usecase

import (
	"fmt"

	inventoryEntity "pos/src/inventory/domain/entity"
	"pos/src/inventory/domain/service"
	"pos/src/sales/application/request"
	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/infrastructure/session"

	"github.com/google/uuid"
)

// AddSaleItemUseCase agrega un producto del catálogo a una venta
// abierta, validando antes que el stock disponible alcance. Si no
// alcanza, la venta queda exactamente como estaba.
type AddSaleItemUseCase struct {
	inventory *service.Inventory
	store     *session.ActiveSaleStore
}

// NewAddSaleItemUseCase crea una nueva instancia del caso de uso.
func NewAddSaleItemUseCase(inventory *service.Inventory, store *session.ActiveSaleStore) *AddSaleItemUseCase {
	return &AddSaleItemUseCase{
		inventory: inventory,
		store:     store,
	}
}

// Execute agrega el producto a la venta.
func (uc *AddSaleItemUseCase) Execute(saleID uuid.UUID, req *request.AddSaleItemRequest) (*response.AddSaleItemResponse, error) {
	sale, ok := uc.store.Get(saleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSaleNotFound, saleID)
	}

	product, err := uc.resolveProduct(req)
	if err != nil {
		return nil, err
	}

	available := uc.inventory.GetStock(product)
	if available.LessThan(req.Quantity) {
		return nil, fmt.Errorf("%w: %s (available: %s, requested: %s)",
			inventoryEntity.ErrInsufficientStock, product.Name, available.String(), req.Quantity.String())
	}

	if err := sale.AddProduct(product, req.Quantity); err != nil {
		return nil, err
	}

	return &response.AddSaleItemResponse{
		SaleID:    sale.ID,
		ItemCount: sale.ItemCount(),
		Subtotal:  sale.CalculateTotalWithoutDiscount(),
	}, nil
}

// resolveProduct busca el producto por nombre o por índice del catálogo.
func (uc *AddSaleItemUseCase) resolveProduct(req *request.AddSaleItemRequest) (inventoryEntity.Product, error) {
	if req.ProductName != "" {
		product, ok := uc.inventory.FindByName(req.ProductName)
		if !ok {
			return inventoryEntity.Product{}, fmt.Errorf("%w: %s", inventoryEntity.ErrProductNotFound, req.ProductName)
		}
		return product, nil
	}
	if req.ProductIndex != nil {
		product, ok := uc.inventory.ProductByIndex(*req.ProductIndex)
		if !ok {
			return inventoryEntity.Product{}, fmt.Errorf("%w: index %d", inventoryEntity.ErrProductNotFound, *req.ProductIndex)
		}
		return product, nil
	}
	return inventoryEntity.Product{}, fmt.Errorf("%w: product_name or product_index is required", inventoryEntity.ErrProductNotFound)
}
