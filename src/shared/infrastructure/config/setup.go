package config

import (
	"pos/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// GzipSharedConfig contiene la configuración para el módulo compartido
// de compresión.
type GzipSharedConfig struct {
	EnableGzip            bool
	AlwaysTryDecompress   bool
	ForceGzipCompression  bool
	ForceGzipCheckSupport bool     // Verifica si el cliente soporta gzip antes de forzar compresión
	ForceGzipPaths        []string // Rutas donde forzar compresión
	GzipExcludedPaths     []string
}

// DefaultSharedConfig devuelve una configuración por defecto.
func DefaultSharedConfig() GzipSharedConfig {
	return GzipSharedConfig{
		EnableGzip:            true,
		AlwaysTryDecompress:   true,
		ForceGzipCompression:  false,
		ForceGzipCheckSupport: true,
		GzipExcludedPaths:     []string{"/health", "/metrics", "/api/v1/health"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos.
func SetupSharedMiddleware(router *gin.Engine, config GzipSharedConfig) {
	// Intentar descomprimir todas las solicitudes entrantes si está habilitado
	if config.AlwaysTryDecompress {
		router.Use(middleware.GzipReader())
	}

	// Compresión gzip de respuestas si está habilitada
	if config.EnableGzip {
		gzipOpts := middleware.GzipOptions{
			ExcludedPaths: config.GzipExcludedPaths,
		}
		router.Use(middleware.GzipMiddleware(gzipOpts))

		// Rutas que siempre deben comprimirse
		if config.ForceGzipCompression && len(config.ForceGzipPaths) > 0 {
			forceGzipOpts := middleware.ForceGzipOptions{
				CheckClientSupport: config.ForceGzipCheckSupport,
			}
			for _, path := range config.ForceGzipPaths {
				router.Group(path).Use(middleware.ForceGzipMiddleware(forceGzipOpts))
			}
		}
	}
}
