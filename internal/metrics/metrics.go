package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of collection store operations.",
		},
		[]string{"entity", "operation"},
	)

	stockAdjustmentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_stock_adjustments_total",
			Help: "Total number of inventory stock adjustments applied.",
		},
	)

	lowStockItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_low_stock_items",
			Help: "Current number of inventory items that are low or out of stock.",
		},
	)

	stockValue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_stock_value",
			Help: "Current total inventory carrying value (stock × unit cost).",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordOperation(entity, operation string) {
	storeOperationsTotal.WithLabelValues(entity, operation).Inc()
}

func RecordStockAdjustment() {
	stockAdjustmentsTotal.Inc()
}

func SetLowStockItems(count int) {
	lowStockItems.Set(float64(count))
}

func SetStockValue(value float64) {
	stockValue.Set(value)
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
