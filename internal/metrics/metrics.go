package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	AccountsCreated      prometheus.Counter
	TransactionsRecorded *prometheus.CounterVec
	OperationErrors      *prometheus.CounterVec

	// Validation Metrics
	ValidationErrors   *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status_code"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		}),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		TransactionsRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_transactions_recorded_total",
			Help: "Total number of transactions appended to the transaction table",
		}, []string{"type"}),

		OperationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operation_errors_total",
			Help: "Total number of failed ledger operations",
		}, []string{"operation", "code"}),

		ValidationErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_validation_errors_total",
			Help: "Total number of request validation failures",
		}, []string{"field", "tag"}),

		ValidationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_validation_duration_seconds",
			Help:    "Request validation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordAccountCreated() {
	m.AccountsCreated.Inc()
}

func (m *Metrics) RecordTransaction(txType string) {
	m.TransactionsRecorded.WithLabelValues(txType).Inc()
}

func (m *Metrics) RecordOperationError(operation, code string) {
	m.OperationErrors.WithLabelValues(operation, code).Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}

func (m *Metrics) RecordValidationDuration(operation string, duration time.Duration) {
	m.ValidationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
