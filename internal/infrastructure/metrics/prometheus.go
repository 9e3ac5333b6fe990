// Package metrics expone contadores e histogramas Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las métricas HTTP y de consultas de precio.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	lookupsTotal    *prometheus.CounterVec
	lookupDuration  *prometheus.HistogramVec
}

// New registra las métricas en reg.
func New(service string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"service": service}
	return &Metrics{
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"method", "route"},
		),
		lookupsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "customer_pricing_lookups_total",
				Help:        "Total number of customer pricing lookups by outcome",
				ConstLabels: labels,
			},
			[]string{"outcome"},
		),
		lookupDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "customer_pricing_lookup_duration_seconds",
				Help:        "Customer pricing lookup duration in seconds",
				Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
				ConstLabels: labels,
			},
			[]string{"outcome"},
		),
	}
}

// NewRegistry registro con los collectors de runtime de Go y del proceso.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler expone el registro en formato Prometheus.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// ObserveHTTP registra una petición HTTP terminada.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveLookup registra una consulta de precio. Implementa pricing.LookupObserver.
func (m *Metrics) ObserveLookup(outcome string, elapsed time.Duration) {
	m.lookupsTotal.WithLabelValues(outcome).Inc()
	m.lookupDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
