package port

import (
	"context"
	"time"

	"pos/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemRecord es la fila persistida de un item de venta.
type SaleItemRecord struct {
	ProductID   string
	ProductName string
	Kind        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// SaleRecord es la fila persistida de una venta cerrada con sus items.
type SaleRecord struct {
	ID        uuid.UUID
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
	Items     []SaleItemRecord
}

// SaleRepository define el contrato para persistir ventas cerradas.
// Sólo Create y List, sin updates ni deletes: el historial es un libro
// que únicamente crece.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context) ([]SaleRecord, error)
}
