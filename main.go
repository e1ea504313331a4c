package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	apiConfig "pos/src/api/config"
	inventoryUseCase "pos/src/inventory/application/usecase"
	inventoryController "pos/src/inventory/infrastructure/controller"
	inventoryListener "pos/src/inventory/infrastructure/listener"
	inventoryPersistence "pos/src/inventory/infrastructure/persistence"
	inventoryPort "pos/src/inventory/domain/port"
	inventoryService "pos/src/inventory/domain/service"
	salesEntity "pos/src/sales/domain/entity"
	salesPort "pos/src/sales/domain/port"
	salesUseCase "pos/src/sales/application/usecase"
	salesController "pos/src/sales/infrastructure/controller"
	salesPersistence "pos/src/sales/infrastructure/persistence"
	"pos/src/sales/infrastructure/session"
	sharedConfig "pos/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const inventoryLogFile = "inventory_changes_log.txt"

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 POS Service - Carnicería - Iniciando...")

	ctx := context.Background()

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint for POS service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for POS service")
	}

	// Configurar GZIP y otros middlewares compartidos
	gzipSharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, gzipSharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "pos_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a %s", dbName)

	// Conectar a la base de datos; sin DB se continúa con el
	// repositorio en memoria (sólo para desarrollo)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		db = nil
	} else if err = db.Ping(); err != nil {
		log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
		log.Println("⚠️  Continuando con inventario en memoria (sin persistencia)")
		db.Close()
		db = nil
	} else {
		defer db.Close()
		log.Printf("✅ Conexión a %s establecida con éxito", dbName)
	}

	// Elegir repositorio de productos según disponibilidad de la DB
	var productRepo inventoryPort.ProductRepository
	var saleRepo salesPort.SaleRepository
	if db != nil {
		pgRepo := inventoryPersistence.NewProductPostgresRepository(db)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("❌ No se pudo inicializar el esquema de inventario: %v", err)
		}
		productRepo = pgRepo

		salePgRepo := salesPersistence.NewSalePostgresRepository(db)
		if err := salePgRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("❌ No se pudo inicializar el esquema de ventas: %v", err)
		}
		saleRepo = salePgRepo
	} else {
		productRepo = inventoryPersistence.NewProductMemoryRepository()
	}

	// Inventario: instancia única de proceso, construida una sola vez
	inventory, err := inventoryService.Initialize(ctx, productRepo)
	if err != nil {
		log.Fatalf("❌ No se pudo cargar el inventario: %v", err)
	}

	// Registrar listeners de cambios del inventario
	changes := inventoryListener.NewListListener()
	inventory.Register(inventoryListener.NewConsoleListener())
	inventory.Register(inventoryListener.NewFileListener(inventoryLogFile))
	inventory.Register(changes)

	// Sembrar datos de muestra si se pide
	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		seedUC := inventoryUseCase.NewSeedSampleDataUseCase(inventory)
		if err := seedUC.Execute(ctx); err != nil {
			log.Printf("⚠️  Advertencia: No se pudieron sembrar datos de muestra: %v", err)
		}
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos Inventory y Sales
	setupInventoryModule(v1, inventory, changes)
	setupSalesModule(v1, inventory, saleRepo)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor POS iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupInventoryModule configura el módulo Inventory
func setupInventoryModule(router *gin.RouterGroup, inventory *inventoryService.Inventory, changes *inventoryListener.ListListener) {
	log.Println("Configurando módulo Inventory...")

	inventoryCtrl := inventoryController.NewInventoryController(
		inventoryUseCase.NewAddProductUseCase(inventory),
		inventoryUseCase.NewAddStockUseCase(inventory),
		inventoryUseCase.NewRenameProductUseCase(inventory),
		inventoryUseCase.NewUpdatePriceUseCase(inventory),
		inventoryUseCase.NewRemoveProductUseCase(inventory),
		inventoryUseCase.NewListProductsUseCase(inventory),
		inventoryUseCase.NewGetStockUseCase(inventory),
		changes,
	)
	inventoryCtrl.RegisterRoutes(router)

	log.Println("Módulo Inventory configurado exitosamente")
}

// setupSalesModule configura el módulo Sales
func setupSalesModule(router *gin.RouterGroup, inventory *inventoryService.Inventory, saleRepo salesPort.SaleRepository) {
	log.Println("Configurando módulo Sales...")

	history := salesEntity.NewSalesHistory()
	store := session.NewActiveSaleStore()

	processor := salesUseCase.NewProcessSaleUseCase(inventory, history, saleRepo)

	salesCtrl := salesController.NewSalesController(
		salesUseCase.NewBeginSaleUseCase(store),
		salesUseCase.NewAddSaleItemUseCase(inventory, store),
		salesUseCase.NewSaleSubtotalUseCase(store),
		salesUseCase.NewFinishSaleUseCase(store, processor),
		salesUseCase.NewCancelSaleUseCase(store),
		salesUseCase.NewQuotePriceUseCase(inventory),
	)
	salesCtrl.RegisterRoutes(router)

	reportCtrl := salesController.NewReportController(
		salesUseCase.NewSalesReportUseCase(history, saleRepo),
	)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Sales configurado exitosamente")
}
