package response

import "github.com/shopspring/decimal"

// ProductResponse representa un producto del catálogo con su stock.
type ProductResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	PriceLabel string          `json:"price_label"`
	Stock      decimal.Decimal `json:"stock"`
}

// ListProductsResponse lista el catálogo ordenado por nombre.
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	TotalCount int               `json:"total_count"`
}

// StockResponse respuesta de la consulta o mutación de stock.
type StockResponse struct {
	Name  string          `json:"name"`
	Stock decimal.Decimal `json:"stock"`
}

// RemoveProductResponse respuesta de la eliminación de un producto.
type RemoveProductResponse struct {
	Name    string `json:"name"`
	Removed bool   `json:"removed"`
}

// ChangesResponse lista los cambios recientes del inventario.
type ChangesResponse struct {
	Messages   []string `json:"messages"`
	TotalCount int      `json:"total_count"`
}
