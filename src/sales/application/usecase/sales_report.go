package usecase

import (
	"context"
	"errors"
	"fmt"

	"pos/src/sales/application/response"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"

	"github.com/shopspring/decimal"
)

// ErrReportUnavailable indica que el reporte persistido no está
// disponible porque no hay base de datos configurada.
var ErrReportUnavailable = errors.New("persisted sales report not available (database not configured)")

// SalesReportUseCase arma el reporte de ventas: el historial en memoria
// de la sesión y, si hay base de datos, el libro persistido completo.
type SalesReportUseCase struct {
	history  *entity.SalesHistory
	saleRepo port.SaleRepository // nil cuando no hay base de datos
}

// NewSalesReportUseCase crea una nueva instancia del caso de uso.
func NewSalesReportUseCase(history *entity.SalesHistory, saleRepo port.SaleRepository) *SalesReportUseCase {
	return &SalesReportUseCase{
		history:  history,
		saleRepo: saleRepo,
	}
}

// Execute regresa el reporte de la sesión en curso.
func (uc *SalesReportUseCase) Execute() *response.SalesReportResponse {
	sales := uc.history.List()

	summaries := make([]response.SaleSummaryResponse, 0, len(sales))
	for _, sale := range sales {
		summaries = append(summaries, toSummary(sale))
	}

	return &response.SalesReportResponse{
		Sales:        summaries,
		TotalCount:   len(summaries),
		TotalRevenue: uc.history.TotalRevenue(),
	}
}

// ExecutePersisted regresa el libro persistido completo desde la base.
func (uc *SalesReportUseCase) ExecutePersisted(ctx context.Context) (*response.SalesReportResponse, error) {
	if uc.saleRepo == nil {
		return nil, ErrReportUnavailable
	}

	records, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing persisted sales: %w", err)
	}

	summaries := make([]response.SaleSummaryResponse, 0, len(records))
	revenue := decimal.Zero
	for _, rec := range records {
		items := make([]response.SaleItemResponse, 0, len(rec.Items))
		for _, it := range rec.Items {
			items = append(items, response.SaleItemResponse{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Kind:        it.Kind,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Subtotal:    it.Subtotal,
			})
		}
		summaries = append(summaries, response.SaleSummaryResponse{
			SaleID:    rec.ID,
			Status:    rec.Status,
			Total:     rec.Total,
			CreatedAt: rec.CreatedAt,
			Items:     items,
		})
		revenue = revenue.Add(rec.Total)
	}

	return &response.SalesReportResponse{
		Sales:        summaries,
		TotalCount:   len(summaries),
		TotalRevenue: revenue,
	}, nil
}

func toSummary(sale *entity.Sale) response.SaleSummaryResponse {
	items := make([]response.SaleItemResponse, 0, sale.ItemCount())
	for _, it := range sale.Items() {
		items = append(items, response.SaleItemResponse{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			Kind:        string(it.Product.Kind),
			Quantity:    it.Quantity,
			UnitPrice:   it.Product.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return response.SaleSummaryResponse{
		SaleID:    sale.ID,
		Status:    string(sale.Status()),
		Total:     sale.Total(),
		CreatedAt: sale.CreatedAt,
		Items:     items,
	}
}
