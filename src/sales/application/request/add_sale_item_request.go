package request

import "github.com/shopspring/decimal"

// AddSaleItemRequest agrega un producto a una venta abierta. El
// producto se elige por nombre o por su índice en la lista ordenada del
// catálogo (el orden que ve el usuario del mostrador).
type AddSaleItemRequest struct {
	ProductName  string          `json:"product_name,omitempty"`
	ProductIndex *int            `json:"product_index,omitempty"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
}
