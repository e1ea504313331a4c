package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BeginSaleResponse respuesta al abrir una venta.
type BeginSaleResponse struct {
	SaleID    uuid.UUID `json:"sale_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SaleItemResponse representa un item de venta en las respuestas.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Kind        string          `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// AddSaleItemResponse respuesta al agregar un producto a la venta.
type AddSaleItemResponse struct {
	SaleID    uuid.UUID       `json:"sale_id"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SubtotalResponse respuesta de la consulta de subtotal.
type SubtotalResponse struct {
	SaleID   uuid.UUID       `json:"sale_id"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// FinishSaleResponse respuesta al cerrar una venta.
type FinishSaleResponse struct {
	SaleID uuid.UUID       `json:"sale_id"`
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
}

// CancelSaleResponse respuesta al cancelar una venta.
type CancelSaleResponse struct {
	SaleID uuid.UUID `json:"sale_id"`
	Status string    `json:"status"`
}
