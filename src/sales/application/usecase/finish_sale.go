package usecase

import (
	"context"
	"fmt"
	"log"

	"pos/src/sales/application/request"
	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/infrastructure/session"

	"github.com/google/uuid"
)

// FinishSaleUseCase cierra una venta abierta: elige la estrategia de
// descuento, la aplica, finaliza la venta y la manda al procesador.
// La venta sale del store de activas aunque el procesamiento falle;
// en ese caso ya quedó finalizada y no se puede reutilizar.
type FinishSaleUseCase struct {
	store     *session.ActiveSaleStore
	processor *ProcessSaleUseCase
}

// NewFinishSaleUseCase crea una nueva instancia del caso de uso.
func NewFinishSaleUseCase(store *session.ActiveSaleStore, processor *ProcessSaleUseCase) *FinishSaleUseCase {
	return &FinishSaleUseCase{
		store:     store,
		processor: processor,
	}
}

// Execute cierra y procesa la venta.
func (uc *FinishSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID, req *request.FinishSaleRequest) (*response.FinishSaleResponse, error) {
	sale, ok := uc.store.Get(saleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSaleNotFound, saleID)
	}

	strategy := entity.SelectStrategy(req.FrequentCustomer, req.DiscountPercent)
	if err := sale.SetStrategy(strategy); err != nil {
		return nil, err
	}
	if err := sale.ApplyDiscount(); err != nil {
		return nil, err
	}
	if err := sale.Finalize(); err != nil {
		return nil, err
	}

	uc.store.Remove(saleID)

	if err := uc.processor.Execute(ctx, sale); err != nil {
		log.Printf("❌ Error procesando venta %s: %v", sale.ID, err)
		return nil, err
	}

	return &response.FinishSaleResponse{
		SaleID: sale.ID,
		Status: string(sale.Status()),
		Total:  sale.Total(),
	}, nil
}
