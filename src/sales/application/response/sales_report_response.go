package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleSummaryResponse resume una venta cerrada para el reporte.
type SaleSummaryResponse struct {
	SaleID    uuid.UUID          `json:"sale_id"`
	Status    string             `json:"status"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []SaleItemResponse `json:"items"`
}

// SalesReportResponse reporte de ventas de la sesión.
type SalesReportResponse struct {
	Sales        []SaleSummaryResponse `json:"sales"`
	TotalCount   int                   `json:"total_count"`
	TotalRevenue decimal.Decimal       `json:"total_revenue"`
}
