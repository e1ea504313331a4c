package controller

import (
	"errors"
	"log"
	"net/http"

	"pos/src/inventory/application/request"
	"pos/src/inventory/application/response"
	"pos/src/inventory/application/usecase"
	"pos/src/inventory/domain/entity"
	"pos/src/inventory/infrastructure/listener"

	"github.com/gin-gonic/gin"
)

// InventoryController maneja las peticiones HTTP del catálogo y stock.
type InventoryController struct {
	addProductUC  *usecase.AddProductUseCase
	addStockUC    *usecase.AddStockUseCase
	renameUC      *usecase.RenameProductUseCase
	updatePriceUC *usecase.UpdatePriceUseCase
	removeUC      *usecase.RemoveProductUseCase
	listUC        *usecase.ListProductsUseCase
	getStockUC    *usecase.GetStockUseCase
	changes       *listener.ListListener
}

// NewInventoryController crea una nueva instancia del controlador.
func NewInventoryController(
	addProductUC *usecase.AddProductUseCase,
	addStockUC *usecase.AddStockUseCase,
	renameUC *usecase.RenameProductUseCase,
	updatePriceUC *usecase.UpdatePriceUseCase,
	removeUC *usecase.RemoveProductUseCase,
	listUC *usecase.ListProductsUseCase,
	getStockUC *usecase.GetStockUseCase,
	changes *listener.ListListener,
) *InventoryController {
	return &InventoryController{
		addProductUC:  addProductUC,
		addStockUC:    addStockUC,
		renameUC:      renameUC,
		updatePriceUC: updatePriceUC,
		removeUC:      removeUC,
		listUC:        listUC,
		getStockUC:    getStockUC,
		changes:       changes,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *InventoryController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.POST("", c.AddProduct)
		products.GET("/:name/stock", c.GetStock)
		products.POST("/:name/stock", c.AddStock)
		products.POST("/:name/rename", c.RenameProduct)
		products.POST("/:name/price", c.UpdatePrice)
		products.DELETE("/:name", c.RemoveProduct)
	}
	router.GET("/inventory/changes", c.ListChanges)

	log.Println("Rutas Inventory disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  POST   /api/v1/products")
	log.Println("  GET    /api/v1/products/:name/stock")
	log.Println("  POST   /api/v1/products/:name/stock")
	log.Println("  POST   /api/v1/products/:name/rename")
	log.Println("  POST   /api/v1/products/:name/price")
	log.Println("  DELETE /api/v1/products/:name")
	log.Println("  GET    /api/v1/inventory/changes")
}

// ListProducts lista el catálogo ordenado por nombre.
func (c *InventoryController) ListProducts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.listUC.Execute())
}

// AddProduct da de alta un producto nuevo.
func (c *InventoryController) AddProduct(ctx *gin.Context) {
	var req request.AddProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.addProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetStock consulta las existencias de un producto.
func (c *InventoryController) GetStock(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.getStockUC.Execute(ctx.Param("name")))
}

// AddStock agrega existencias a un producto.
func (c *InventoryController) AddStock(ctx *gin.Context) {
	var req request.AddStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.addStockUC.Execute(ctx.Request.Context(), ctx.Param("name"), &req)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RenameProduct cambia el nombre de un producto.
func (c *InventoryController) RenameProduct(ctx *gin.Context) {
	var req request.RenameProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.renameUC.Execute(ctx.Request.Context(), ctx.Param("name"), &req)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdatePrice cambia el precio de un producto.
func (c *InventoryController) UpdatePrice(ctx *gin.Context) {
	var req request.UpdatePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.updatePriceUC.Execute(ctx.Request.Context(), ctx.Param("name"), &req)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RemoveProduct elimina un producto del catálogo.
func (c *InventoryController) RemoveProduct(ctx *gin.Context) {
	resp, err := c.removeUC.Execute(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if !resp.Removed {
		ctx.JSON(http.StatusNotFound, resp)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListChanges lista los cambios recientes del inventario.
func (c *InventoryController) ListChanges(ctx *gin.Context) {
	messages := c.changes.Messages()
	ctx.JSON(http.StatusOK, response.ChangesResponse{
		Messages:   messages,
		TotalCount: len(messages),
	})
}

// statusFor traduce la taxonomía de errores del dominio a HTTP:
// validación 422, no encontrado 404, conflicto y regla de negocio 409,
// persistencia 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrDuplicateName),
		errors.Is(err, entity.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrNegativeQuantity),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrProductNameRequired),
		errors.Is(err, entity.ErrUnknownProductKind):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
