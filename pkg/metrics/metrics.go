// Package metrics registra las métricas Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Operaciones del motor de inventario (list_products, transfer_stock, ...)
	// con resultado ok / not_found / invalid / insufficient_stock.
	EngineOperationsTotal *prometheus.CounterVec
)

// Init registra las métricas con el prefijo configurado. Llamar una sola vez al arrancar.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	EngineOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_engine_operations_total",
			Help: "Total de operaciones del motor de inventario",
		},
		[]string{"operation", "result"},
	)
}

// RecordEngineOperation incrementa el contador de una operación del motor.
// No hace nada si Init no se ha llamado (tests unitarios sin métricas).
func RecordEngineOperation(operation, result string) {
	if EngineOperationsTotal == nil {
		return
	}
	EngineOperationsTotal.WithLabelValues(operation, result).Inc()
}
