package usecase

import (
	"pos/src/inventory/application/response"
	"pos/src/inventory/domain/service"
)

// ListProductsUseCase lista el catálogo ordenado alfabéticamente por
// nombre, con las existencias de cada producto.
type ListProductsUseCase struct {
	inventory *service.Inventory
}

// NewListProductsUseCase crea una nueva instancia del caso de uso.
func NewListProductsUseCase(inventory *service.Inventory) *ListProductsUseCase {
	return &ListProductsUseCase{inventory: inventory}
}

// Execute regresa la lista ordenada de productos.
func (uc *ListProductsUseCase) Execute() *response.ListProductsResponse {
	stocked := uc.inventory.ListWithStock()

	products := make([]response.ProductResponse, 0, len(stocked))
	for _, sp := range stocked {
		products = append(products, response.ProductResponse{
			ID:         sp.Product.ID,
			Name:       sp.Product.Name,
			Kind:       string(sp.Product.Kind),
			UnitPrice:  sp.Product.UnitPrice,
			PriceLabel: sp.Product.PriceLabel(),
			Stock:      sp.Stock,
		})
	}

	return &response.ListProductsResponse{
		Products:   products,
		TotalCount: len(products),
	}
}

// GetStockUseCase consulta las existencias de un producto por nombre.
// Un producto desconocido regresa stock 0, nunca un error.
type GetStockUseCase struct {
	inventory *service.Inventory
}

// NewGetStockUseCase crea una nueva instancia del caso de uso.
func NewGetStockUseCase(inventory *service.Inventory) *GetStockUseCase {
	return &GetStockUseCase{inventory: inventory}
}

// Execute regresa las existencias del producto.
func (uc *GetStockUseCase) Execute(name string) *response.StockResponse {
	return &response.StockResponse{
		Name:  name,
		Stock: uc.inventory.GetStockByName(name),
	}
}
