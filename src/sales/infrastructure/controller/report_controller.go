package controller

import (
	"errors"
	"log"
	"net/http"

	"pos/src/sales/application/usecase"

	"github.com/gin-gonic/gin"
)

// ReportController expone los reportes de ventas e ingresos.
type ReportController struct {
	reportUC *usecase.SalesReportUseCase
}

// NewReportController crea una nueva instancia del controlador.
func NewReportController(reportUC *usecase.SalesReportUseCase) *ReportController {
	return &ReportController{reportUC: reportUC}
}

// RegisterRoutes registra las rutas del controlador.
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/sales", c.SessionSales)
		reports.GET("/sales/persisted", c.PersistedSales)
		reports.GET("/revenue", c.Revenue)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/sales")
	log.Println("  GET    /api/v1/reports/sales/persisted")
	log.Println("  GET    /api/v1/reports/revenue")
}

// SessionSales regresa el historial de ventas de la sesión.
func (c *ReportController) SessionSales(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.reportUC.Execute())
}

// PersistedSales regresa el libro de ventas persistido en la base.
func (c *ReportController) PersistedSales(ctx *gin.Context) {
	resp, err := c.reportUC.ExecutePersisted(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrReportUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error listing persisted sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Revenue regresa el ingreso total acumulado de la sesión.
func (c *ReportController) Revenue(ctx *gin.Context) {
	report := c.reportUC.Execute()
	ctx.JSON(http.StatusOK, gin.H{
		"total_revenue": report.TotalRevenue,
		"total_count":   report.TotalCount,
	})
}
