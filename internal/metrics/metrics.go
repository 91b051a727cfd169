package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CacheHitsTotal      prometheus.Counter
	CacheMissesTotal    prometheus.Counter
	UpstreamErrorsTotal prometheus.Counter
	ConversionsTotal    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxproxy_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "method", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fxproxy_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),

		CacheHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fxproxy_rate_cache_hits_total",
				Help: "Rate table requests served from the cache",
			},
		),

		CacheMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fxproxy_rate_cache_misses_total",
				Help: "Rate table requests that had to hit the upstream",
			},
		),

		UpstreamErrorsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fxproxy_upstream_errors_total",
				Help: "Failed fetches from the rates provider",
			},
		),

		ConversionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fxproxy_conversions_total",
				Help: "Total number of currency conversions performed",
			},
		),
	}
}

// The counter methods satisfy rate.Metrics.

func (m *Metrics) CacheHit()      { m.CacheHitsTotal.Inc() }
func (m *Metrics) CacheMiss()     { m.CacheMissesTotal.Inc() }
func (m *Metrics) UpstreamError() { m.UpstreamErrorsTotal.Inc() }
func (m *Metrics) Conversion()    { m.ConversionsTotal.Inc() }
