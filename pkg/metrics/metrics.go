package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик консоли
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec

	validationFailures *prometheus.CounterVec
	sessionTransitions *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served by the console",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_api_requests_total",
			Help:        "Total number of calls to the backend API",
			ConstLabels: labels,
		}, []string{"method", "endpoint", "status"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_api_request_duration_seconds",
			Help:        "Backend API call latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validation_failures_total",
			Help:        "Booking drafts rejected locally, by failed rule",
			ConstLabels: labels,
		}, []string{"rule"}),
		sessionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "session_transitions_total",
			Help:        "Session gate state transitions",
			ConstLabels: labels,
		}, []string{"from", "to"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.upstreamRequests,
		m.upstreamDuration,
		m.validationFailures,
		m.sessionTransitions,
	)

	return m
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveUpstream учитывает вызов backend API; status 0 - ошибка транспорта
func (m *Metrics) ObserveUpstream(method, endpoint string, status int, d time.Duration) {
	m.upstreamRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	m.upstreamDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

// IncValidationFailure учитывает отклонённый локально черновик
func (m *Metrics) IncValidationFailure(rule string) {
	m.validationFailures.WithLabelValues(rule).Inc()
}

// IncSessionTransition учитывает переход состояния сессии
func (m *Metrics) IncSessionTransition(from, to string) {
	m.sessionTransitions.WithLabelValues(from, to).Inc()
}
