package request

import "github.com/shopspring/decimal"

// QuotePriceRequest cotiza el precio de un producto por nombre, con un
// descuento porcentual opcional (escala 0-100).
type QuotePriceRequest struct {
	ProductName     string          `json:"product_name" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	DiscountPercent float64         `json:"discount_percent"`
}
