package usecase

import (
	"context"
	"fmt"
	"log"

	inventoryEntity "pos/src/inventory/domain/entity"
	"pos/src/inventory/domain/service"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
	"pos/src/shared/infrastructure/metrics"
)

// ProcessSaleUseCase es el núcleo transaccional: dada una venta
// finalizada, valida el stock de todos los items, aplica la deducción y
// registra la venta en el historial.
//
// La validación es todo-o-nada: se revisan todos los items antes de
// descontar el primero. La deducción en sí no tiene rollback: si una
// escritura de persistencia falla a media vuelta, los descuentos
// anteriores quedan aplicados. Con un solo actor ese caso no ocurre por
// stock; queda documentado como brecha conocida si algún día hay
// mutación concurrente.
type ProcessSaleUseCase struct {
	inventory *service.Inventory
	history   *entity.SalesHistory
	saleRepo  port.SaleRepository // nil cuando no hay base de datos
}

// NewProcessSaleUseCase crea una nueva instancia del caso de uso.
func NewProcessSaleUseCase(inventory *service.Inventory, history *entity.SalesHistory, saleRepo port.SaleRepository) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{
		inventory: inventory,
		history:   history,
		saleRepo:  saleRepo,
	}
}

// Execute procesa una venta finalizada. En caso de fallo de validación
// ni el inventario ni el historial se tocan.
func (uc *ProcessSaleUseCase) Execute(ctx context.Context, sale *entity.Sale) error {
	if sale == nil {
		return entity.ErrNilSale
	}
	if sale.Status() != entity.SaleStatusPaid {
		metrics.SalesRejected.WithLabelValues("not_finalized").Inc()
		return entity.ErrSaleNotPaid
	}

	// Pre-chequeo de stock para todos los items antes de descontar nada.
	for _, it := range sale.Items() {
		available := uc.inventory.GetStock(it.Product)
		if available.LessThan(it.Quantity) {
			metrics.SalesRejected.WithLabelValues("insufficient_stock").Inc()
			return fmt.Errorf("%w: %s (available: %s, requested: %s)",
				inventoryEntity.ErrInsufficientStock, it.Product.Name, available.String(), it.Quantity.String())
		}
	}

	for _, it := range sale.Items() {
		if err := uc.inventory.ReduceStock(ctx, it.Product, it.Quantity); err != nil {
			return fmt.Errorf("error reducing stock of %s: %w", it.Product.Name, err)
		}
	}

	if err := uc.history.Add(sale); err != nil {
		return err
	}

	// El historial en memoria es la fuente de verdad de la sesión; si la
	// copia persistida falla se registra y la venta sigue procesada.
	if uc.saleRepo != nil {
		if err := uc.saleRepo.Create(ctx, sale); err != nil {
			log.Printf("⚠️  No se pudo persistir la venta %s: %v", sale.ID, err)
		}
	}

	metrics.SalesProcessed.Inc()
	log.Printf("✅ Venta procesada: %s | Total: %s", sale.ID, sale.Total().StringFixed(2))
	return nil
}
