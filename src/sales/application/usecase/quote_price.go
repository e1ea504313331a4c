package usecase

import (
	"fmt"

	inventoryEntity "pos/src/inventory/domain/entity"
	"pos/src/inventory/domain/service"
	"pos/src/sales/application/request"
	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
)

// QuotePriceUseCase cotiza el precio de un producto para una cantidad
// dada, con un descuento porcentual opcional. No toca el inventario ni
// abre ninguna venta.
type QuotePriceUseCase struct {
	inventory *service.Inventory
}

// NewQuotePriceUseCase crea una nueva instancia del caso de uso.
func NewQuotePriceUseCase(inventory *service.Inventory) *QuotePriceUseCase {
	return &QuotePriceUseCase{inventory: inventory}
}

// Execute calcula precio original y precio con descuento.
func (uc *QuotePriceUseCase) Execute(req *request.QuotePriceRequest) (*response.QuotePriceResponse, error) {
	product, ok := uc.inventory.FindByName(req.ProductName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", inventoryEntity.ErrProductNotFound, req.ProductName)
	}

	original, err := product.CalculatePrice(req.Quantity)
	if err != nil {
		return nil, err
	}

	strategy := entity.SelectStrategy(false, req.DiscountPercent)
	return &response.QuotePriceResponse{
		ProductName:     product.Name,
		Quantity:        req.Quantity,
		OriginalPrice:   original,
		DiscountedPrice: strategy(original),
	}, nil
}
