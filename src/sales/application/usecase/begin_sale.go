package usecase

import (
	"log"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/infrastructure/session"
)

// BeginSaleUseCase abre una venta nueva y la deja disponible en el
// store de ventas activas.
type BeginSaleUseCase struct {
	store *session.ActiveSaleStore
}

// NewBeginSaleUseCase crea una nueva instancia del caso de uso.
func NewBeginSaleUseCase(store *session.ActiveSaleStore) *BeginSaleUseCase {
	return &BeginSaleUseCase{store: store}
}

// Execute abre la venta.
func (uc *BeginSaleUseCase) Execute() *response.BeginSaleResponse {
	sale := entity.NewSale()
	uc.store.Put(sale)

	log.Printf("🛒 Venta abierta: %s", sale.ID)
	return &response.BeginSaleResponse{
		SaleID:    sale.ID,
		Status:    string(sale.Status()),
		CreatedAt: sale.CreatedAt,
	}
}
