package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsProvider manages Prometheus metrics
type MetricsProvider struct {
	registry *prometheus.Registry
	handler  http.Handler
	logger   *zap.Logger

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	ordersCreated       *prometheus.CounterVec
	pushEvents          *prometheus.CounterVec
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(logger *zap.Logger) *MetricsProvider {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mp := &MetricsProvider{
		registry: registry,
		handler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		logger:   logger,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		}, []string{"cache"}),

		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		}, []string{"cache"}),

		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created",
		}, []string{"status"}),

		pushEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "push_events_total",
			Help: "Total number of realtime push events sent",
		}, []string{"event"}),
	}

	registry.MustRegister(
		mp.httpRequestsTotal,
		mp.httpRequestDuration,
		mp.cacheHits,
		mp.cacheMisses,
		mp.ordersCreated,
		mp.pushEvents,
	)

	logger.Info("Prometheus metrics initialized")

	return mp
}

// RecordHTTPRequest records an HTTP request metric
func (mp *MetricsProvider) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	mp.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	mp.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCacheHit records a cache hit
func (mp *MetricsProvider) RecordCacheHit(cacheName string) {
	mp.cacheHits.WithLabelValues(cacheName).Inc()
}

// RecordCacheMiss records a cache miss
func (mp *MetricsProvider) RecordCacheMiss(cacheName string) {
	mp.cacheMisses.WithLabelValues(cacheName).Inc()
}

// RecordOrderCreated records an order creation
func (mp *MetricsProvider) RecordOrderCreated(status string) {
	mp.ordersCreated.WithLabelValues(status).Inc()
}

// RecordPushEvent records a realtime push event
func (mp *MetricsProvider) RecordPushEvent(event string) {
	mp.pushEvents.WithLabelValues(event).Inc()
}

// Handler returns an HTTP handler for Prometheus metrics
func (mp *MetricsProvider) Handler() http.Handler {
	return mp.handler
}

// Middleware returns a gin middleware that records request metrics
func (mp *MetricsProvider) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		mp.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
