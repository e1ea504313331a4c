package usecase

import (
	"context"
	"errors"
	"log"

	"pos/src/inventory/domain/entity"
	"pos/src/inventory/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedSampleDataUseCase siembra productos de muestra de la carnicería.
// Es idempotente: los productos que ya existen se ignoran para permitir
// múltiples ejecuciones.
type SeedSampleDataUseCase struct {
	inventory *service.Inventory
}

// NewSeedSampleDataUseCase crea una nueva instancia del caso de uso.
func NewSeedSampleDataUseCase(inventory *service.Inventory) *SeedSampleDataUseCase {
	return &SeedSampleDataUseCase{inventory: inventory}
}

type sampleProduct struct {
	name  string
	kind  entity.ProductKind
	price float64
	stock float64
}

var sampleProducts = []sampleProduct{
	{"Carne de res - Bistec", entity.KindByWeight, 150.0, 20.0},
	{"Cerdo - Lomo", entity.KindByWeight, 130.0, 10.0},
	{"Pollo entero", entity.KindByUnit, 80.0, 30.0},
	{"Chorizo", entity.KindByUnit, 40.0, 50.0},
}

// Execute siembra los datos de muestra.
func (uc *SeedSampleDataUseCase) Execute(ctx context.Context) error {
	for _, sp := range sampleProducts {
		_, err := uc.inventory.AddProduct(ctx, uuid.NewString(), sp.kind, sp.name, decimal.NewFromFloat(sp.price))
		if errors.Is(err, entity.ErrDuplicateName) {
			continue
		}
		if err != nil {
			return err
		}
		if err := uc.inventory.AddStockByName(ctx, sp.name, decimal.NewFromFloat(sp.stock)); err != nil {
			return err
		}
	}

	log.Println("✅ Datos de muestra sembrados en el inventario")
	return nil
}
