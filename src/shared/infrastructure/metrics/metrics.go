package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores Prometheus del servicio. Se exponen en /metrics cuando
// PROMETHEUS_ENABLED=true.
var (
	// SalesProcessed cuenta las ventas procesadas con éxito.
	SalesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_processed_total",
		Help: "Total de ventas procesadas (stock descontado e historial actualizado)",
	})

	// SalesRejected cuenta las ventas rechazadas por el procesador, por motivo.
	SalesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sales_rejected_total",
		Help: "Total de ventas rechazadas al procesar",
	}, []string{"reason"})

	// InventoryChanges cuenta las mutaciones del inventario, por operación.
	InventoryChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_inventory_changes_total",
		Help: "Total de mutaciones del inventario",
	}, []string{"operation"})
)
