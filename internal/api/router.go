package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"

	_ "fxproxy/docs"
	"fxproxy/internal/metrics"
	"fxproxy/internal/rate/handler"
)

func NewRouter(rateHandler *handler.Handler, m *metrics.Metrics) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	if m != nil {
		router.Use(metricsMiddleware(m))
	}

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/api/v1/currencies", rateHandler.GetSupportedCodes)
	router.Get("/api/v1/convert", rateHandler.Convert)
	router.Get("/api/v1/rates/{base:[A-Za-z]{3}}", rateHandler.GetTable)
	router.Get("/api/v1/rates/{base:[A-Za-z]{3}}/{quote:[A-Za-z]{3}}", rateHandler.GetPair)
	router.Get("/api/v1/snapshots/{base:[A-Za-z]{3}}", rateHandler.ListSnapshots)
	router.Get("/api/v1/snapshots/{base:[A-Za-z]{3}}/latest", rateHandler.GetLatestSnapshot)
	return router
}

// metricsMiddleware records request counts and latency labeled by the chi
// route pattern, so /rates/USD and /rates/EUR land in one series.
func metricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
			m.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		})
	}
}
