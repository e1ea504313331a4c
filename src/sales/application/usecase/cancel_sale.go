package usecase

import (
	"fmt"
	"log"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/infrastructure/session"

	"github.com/google/uuid"
)

// CancelSaleUseCase cancela una venta abierta y la retira del store.
type CancelSaleUseCase struct {
	store *session.ActiveSaleStore
}

// NewCancelSaleUseCase crea una nueva instancia del caso de uso.
func NewCancelSaleUseCase(store *session.ActiveSaleStore) *CancelSaleUseCase {
	return &CancelSaleUseCase{store: store}
}

// Execute cancela la venta.
func (uc *CancelSaleUseCase) Execute(saleID uuid.UUID) (*response.CancelSaleResponse, error) {
	sale, ok := uc.store.Get(saleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSaleNotFound, saleID)
	}

	if err := sale.Cancel(); err != nil {
		return nil, err
	}
	uc.store.Remove(saleID)

	log.Printf("Venta cancelada: %s", sale.ID)
	return &response.CancelSaleResponse{
		SaleID: sale.ID,
		Status: string(sale.Status()),
	}, nil
}
