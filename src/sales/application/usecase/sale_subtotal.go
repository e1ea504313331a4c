package usecase

import (
	"fmt"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/infrastructure/session"

	"github.com/google/uuid"
)

// SaleSubtotalUseCase consulta el subtotal bruto de una venta abierta.
type SaleSubtotalUseCase struct {
	store *session.ActiveSaleStore
}

// NewSaleSubtotalUseCase crea una nueva instancia del caso de uso.
func NewSaleSubtotalUseCase(store *session.ActiveSaleStore) *SaleSubtotalUseCase {
	return &SaleSubtotalUseCase{store: store}
}

// Execute regresa el subtotal sin descuento de la venta.
func (uc *SaleSubtotalUseCase) Execute(saleID uuid.UUID) (*response.SubtotalResponse, error) {
	sale, ok := uc.store.Get(saleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSaleNotFound, saleID)
	}
	return &response.SubtotalResponse{
		SaleID:   sale.ID,
		Subtotal: sale.CalculateTotalWithoutDiscount(),
	}, nil
}
