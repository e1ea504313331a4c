package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API.
type APIConfig struct {
	DB      *sql.DB
	Version string
}

// DefaultAPIConfig devuelve una configuración por defecto.
func DefaultAPIConfig() APIConfig {
	return APIConfig{Version: "dev"}
}

// SetupAPIModule registra el health check en la raíz y bajo /api/v1.
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := healthHandler(cfg)
	router.GET("/health", handler)
	v1.GET("/health", handler)
}

func healthHandler(cfg APIConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		database := "not_configured"
		if cfg.DB != nil {
			database = "up"
			if err := cfg.DB.Ping(); err != nil {
				database = "down"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"version":  cfg.Version,
			"database": database,
		})
	}
}
