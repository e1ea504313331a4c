package response

import "github.com/shopspring/decimal"

// QuotePriceResponse respuesta de la cotización de un producto.
type QuotePriceResponse struct {
	ProductName     string          `json:"product_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
}
