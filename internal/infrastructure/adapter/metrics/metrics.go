package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "topup"

// Metrics groups the Prometheus collectors of the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	requestsTotal    *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	providerLatency  *prometheus.HistogramVec
	webhooksTotal    *prometheus.CounterVec
	transitionsTotal *prometheus.CounterVec
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors on reg and serves them from gatherer
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	m := &Metrics{
		registerer: reg,
		gatherer:   gatherer,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_requests_latency_seconds",
				Help:      "Latency of HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		providerLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Latency of payment provider calls by outcome.",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation", "outcome"},
		),
		webhooksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_deliveries_total",
				Help:      "Provider webhook deliveries by result",
			},
			[]string{"result"}, // applied|duplicate|ignored|unauthorized|bad_request|not_found|error
		),
		transitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transaction_status_total",
				Help:      "Transactions observed in a status after an operation",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(m.requestsTotal, m.requestLatency, m.providerLatency, m.webhooksTotal, m.transitionsTotal)
	return m
}

// WatchDB exports the connection pool statistics of db under the given name
func (m *Metrics) WatchDB(db *sql.DB, name string) error {
	if m == nil {
		return nil
	}
	return m.registerer.Register(collectors.NewDBStatsCollector(db, name))
}

// ObserveRequest records one HTTP request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveProvider records one provider call
func (m *Metrics) ObserveProvider(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.providerLatency.WithLabelValues(operation, outcome).Observe(elapsed.Seconds())
}

// CountWebhook records one webhook delivery result
func (m *Metrics) CountWebhook(result string) {
	if m == nil {
		return
	}
	m.webhooksTotal.WithLabelValues(result).Inc()
}

// CountStatus records a transaction seen in status after a mutation
func (m *Metrics) CountStatus(status string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
