package metrics

import (
	"net/http"
	"strconv"
	"time"

	"firestation-backend/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the collectors of the service on a dedicated registry
type Metrics struct {
	registry *prometheus.Registry

	stockItems      *prometheus.GaugeVec
	lastSweep       prometheus.Gauge
	reorderOutcomes *prometheus.CounterVec
	reorderStatus   *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New creates and registers all collectors
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		stockItems: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "firestation_inventory_items",
				Help: "Inventory items by stock state at the last sweep",
			},
			[]string{"state"},
		),
		lastSweep: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "firestation_stock_sweep_timestamp_seconds",
				Help: "Unix time of the last completed stock sweep",
			},
		),
		reorderOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "firestation_bulk_reorder_items_total",
				Help: "Items processed by bulk reorder by outcome",
			},
			[]string{"outcome"},
		),
		reorderStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "firestation_reorder_transitions_total",
				Help: "Reorder request status transitions",
			},
			[]string{"status"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "firestation_http_requests_total",
				Help: "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "firestation_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		m.stockItems,
		m.lastSweep,
		m.reorderOutcomes,
		m.reorderStatus,
		m.httpRequests,
		m.httpDuration,
		prometheus.NewGoCollector(),
	)
	return m
}

// Registry exposes the registry for tests and custom handlers
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSweep publishes the counts of a stock sweep
func (m *Metrics) ObserveSweep(report *models.StockSweepReport) {
	if m == nil || report == nil {
		return
	}
	m.stockItems.WithLabelValues("total").Set(float64(report.TotalItems))
	m.stockItems.WithLabelValues("low_stock").Set(float64(report.LowStockCount))
	m.stockItems.WithLabelValues("expired").Set(float64(report.ExpiredCount))
	m.stockItems.WithLabelValues("expiring_soon").Set(float64(report.ExpiringSoonCount))
	m.lastSweep.Set(float64(report.RanAt.Unix()))
}

// ObserveBulkReorder counts the per-item outcomes of a bulk reorder
func (m *Metrics) ObserveBulkReorder(result *models.BulkReorderResult) {
	if m == nil || result == nil {
		return
	}
	m.reorderOutcomes.WithLabelValues("success").Add(float64(len(result.Successes)))
	m.reorderOutcomes.WithLabelValues("failure").Add(float64(len(result.Failures)))
	m.reorderOutcomes.WithLabelValues("skipped").Add(float64(len(result.Skipped)))
}

// ObserveReorderStatus counts a reorder request entering status
func (m *Metrics) ObserveReorderStatus(status models.ReorderStatus) {
	if m == nil {
		return
	}
	m.reorderStatus.WithLabelValues(string(status)).Inc()
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
