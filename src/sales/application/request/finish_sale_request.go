package request

// FinishSaleRequest cierra una venta abierta. El cliente frecuente
// tiene precedencia sobre el porcentaje de descuento; el porcentaje
// llega en escala 0-100.
type FinishSaleRequest struct {
	FrequentCustomer bool    `json:"frequent_customer"`
	DiscountPercent  float64 `json:"discount_percent"`
}
