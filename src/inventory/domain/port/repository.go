package port

import (
	"context"

	"pos/src/inventory/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductRecord es la fila persistida de un producto con su stock.
// Respaldada por una sola tabla inventory(id, name, price, stock, type)
// con restricción de unicidad sobre name.
type ProductRecord struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock decimal.Decimal
	Kind  entity.ProductKind
}

// ProductRepository define el contrato de persistencia del inventario.
// El inventario escribe en cada mutación: insert al dar de alta,
// update al cambiar stock/nombre/precio, delete al eliminar.
type ProductRepository interface {
	// LoadAll carga el catálogo completo al construir el inventario.
	LoadAll(ctx context.Context) ([]ProductRecord, error)

	Insert(ctx context.Context, product entity.Product, stock decimal.Decimal) error
	Update(ctx context.Context, product entity.Product, stock decimal.Decimal) error
	Delete(ctx context.Context, productID string) error
}
