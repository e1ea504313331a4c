package request

import "github.com/shopspring/decimal"

// AddProductRequest da de alta un producto en el catálogo. El ID es
// opcional: si no viene, se genera un UUID.
type AddProductRequest struct {
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name" binding:"required"`
	Kind  string          `json:"kind" binding:"required,oneof=BY_UNIT BY_WEIGHT"`
	Price decimal.Decimal `json:"price"`
}

// AddStockRequest agrega existencias a un producto.
type AddStockRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// RenameProductRequest cambia el nombre de un producto.
type RenameProductRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// UpdatePriceRequest cambia el precio de un producto.
type UpdatePriceRequest struct {
	NewPrice decimal.Decimal `json:"new_price"`
}
