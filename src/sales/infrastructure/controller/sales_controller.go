package controller

import (
	"errors"
	"log"
	"net/http"

	inventoryEntity "pos/src/inventory/domain/entity"
	"pos/src/sales/application/request"
	"pos/src/sales/application/usecase"
	"pos/src/sales/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SalesController maneja las peticiones HTTP del ciclo de venta.
type SalesController struct {
	beginSaleUC  *usecase.BeginSaleUseCase
	addItemUC    *usecase.AddSaleItemUseCase
	subtotalUC   *usecase.SaleSubtotalUseCase
	finishSaleUC *usecase.FinishSaleUseCase
	cancelSaleUC *usecase.CancelSaleUseCase
	quotePriceUC *usecase.QuotePriceUseCase
}

// NewSalesController crea una nueva instancia del controlador.
func NewSalesController(
	beginSaleUC *usecase.BeginSaleUseCase,
	addItemUC *usecase.AddSaleItemUseCase,
	subtotalUC *usecase.SaleSubtotalUseCase,
	finishSaleUC *usecase.FinishSaleUseCase,
	cancelSaleUC *usecase.CancelSaleUseCase,
	quotePriceUC *usecase.QuotePriceUseCase,
) *SalesController {
	return &SalesController{
		beginSaleUC:  beginSaleUC,
		addItemUC:    addItemUC,
		subtotalUC:   subtotalUC,
		finishSaleUC: finishSaleUC,
		cancelSaleUC: cancelSaleUC,
		quotePriceUC: quotePriceUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *SalesController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("", c.BeginSale)
		sales.POST("/quote", c.QuotePrice)
		sales.POST("/:sale_id/items", c.AddItem)
		sales.GET("/:sale_id/subtotal", c.GetSubtotal)
		sales.POST("/:sale_id/finish", c.FinishSale)
		sales.POST("/:sale_id/cancel", c.CancelSale)
	}

	log.Println("Rutas Sales disponibles:")
	log.Println("  POST   /api/v1/sales")
	log.Println("  POST   /api/v1/sales/quote")
	log.Println("  POST   /api/v1/sales/:sale_id/items")
	log.Println("  GET    /api/v1/sales/:sale_id/subtotal")
	log.Println("  POST   /api/v1/sales/:sale_id/finish")
	log.Println("  POST   /api/v1/sales/:sale_id/cancel")
}

// BeginSale abre una venta nueva.
func (c *SalesController) BeginSale(ctx *gin.Context) {
	ctx.JSON(http.StatusCreated, c.beginSaleUC.Execute())
}

// AddItem agrega un producto a una venta abierta.
func (c *SalesController) AddItem(ctx *gin.Context) {
	saleID, ok := c.saleIDParam(ctx)
	if !ok {
		return
	}

	var req request.AddSaleItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.addItemUC.Execute(saleID, &req)
	if err != nil {
		ctx.JSON(saleStatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSubtotal consulta el subtotal bruto de una venta abierta.
func (c *SalesController) GetSubtotal(ctx *gin.Context) {
	saleID, ok := c.saleIDParam(ctx)
	if !ok {
		return
	}

	resp, err := c.subtotalUC.Execute(saleID)
	if err != nil {
		ctx.JSON(saleStatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// FinishSale cierra una venta: descuento, finalización y procesamiento.
func (c *SalesController) FinishSale(ctx *gin.Context) {
	saleID, ok := c.saleIDParam(ctx)
	if !ok {
		return
	}

	var req request.FinishSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.finishSaleUC.Execute(ctx.Request.Context(), saleID, &req)
	if err != nil {
		ctx.JSON(saleStatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CancelSale cancela una venta abierta.
func (c *SalesController) CancelSale(ctx *gin.Context) {
	saleID, ok := c.saleIDParam(ctx)
	if !ok {
		return
	}

	resp, err := c.cancelSaleUC.Execute(saleID)
	if err != nil {
		ctx.JSON(saleStatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// QuotePrice cotiza un producto sin abrir venta.
func (c *SalesController) QuotePrice(ctx *gin.Context) {
	var req request.QuotePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.quotePriceUC.Execute(&req)
	if err != nil {
		ctx.JSON(saleStatusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *SalesController) saleIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale_id format"})
		return uuid.Nil, false
	}
	return saleID, true
}

// saleStatusFor traduce la taxonomía de errores a HTTP. Los errores de
// estado (venta ya pagada o cancelada) son rechazos legítimos de
// navegación, no bugs: se reportan como conflicto, nunca tiran el proceso.
func saleStatusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrSaleNotFound),
		errors.Is(err, inventoryEntity.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrSaleNotPending),
		errors.Is(err, entity.ErrSaleNotPaid),
		errors.Is(err, inventoryEntity.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, entity.ErrNilSale),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, inventoryEntity.ErrInvalidQuantity),
		errors.Is(err, inventoryEntity.ErrNegativeQuantity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
