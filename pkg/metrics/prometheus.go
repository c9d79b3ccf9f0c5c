package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	StoreOperations    *prometheus.CounterVec
	StoreDuration      *prometheus.HistogramVec
	StoreErrors        *prometheus.CounterVec
	DocumentsCreated   *prometheus.CounterVec
	QuotedTotalAmounts prometheus.Histogram
}

// NewMetrics registers the service metrics on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StoreOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_store_operations_total",
			Help:      "The total number of document store operations",
		}, []string{"collection", "operation"}),
		StoreDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_store_operation_duration_seconds",
			Help:      "Time taken by document store operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection", "operation"}),
		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_store_errors_total",
			Help:      "The total number of failed document store operations",
		}, []string{"collection", "operation"}),
		DocumentsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_created_total",
			Help:      "The total number of documents created per collection",
		}, []string{"collection"}),
		QuotedTotalAmounts: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_total_amount",
			Help:      "Distribution of computed quote totals",
			Buckets:   []float64{100, 150, 200, 250, 300, 400, 500, 750},
		}),
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveStore(collection, operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.StoreOperations.WithLabelValues(collection, operation).Inc()
	m.StoreDuration.WithLabelValues(collection, operation).Observe(elapsed.Seconds())
	if err != nil {
		m.StoreErrors.WithLabelValues(collection, operation).Inc()
	}
}

func (m *Metrics) DocumentCreated(collection string) {
	if m == nil {
		return
	}
	m.DocumentsCreated.WithLabelValues(collection).Inc()
}

func (m *Metrics) QuoteTotal(total float64) {
	if m == nil {
		return
	}
	m.QuotedTotalAmounts.Observe(total)
}
