package server

import (
	stdhttp "net/http"
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// operationalPaths are infrastructure endpoints excluded from request
// metrics, matching the health-exclusion default of the org's gRPC servers.
var operationalPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
	"/metrics": true,
}

// catchAllOperation labels the greeting route in request metrics. The route
// serves every path identically, so it is a single logical operation; using
// the raw path here would make the label cardinality unbounded.
const catchAllOperation = "/"

// statusWriter records the response code written by the wrapped handler.
type statusWriter struct {
	stdhttp.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// serverFilters assembles the per-request filter chain: panic recovery,
// request metrics and request logging. Raw mux handlers do not pass through
// kratos endpoint middleware, so these concerns live at the filter level
// where they wrap every registered route.
func serverFilters(tel *Telemetry, logger log.Logger) []http.FilterFunc {
	return []http.FilterFunc{
		recoveryFilter(logger),
		metricsFilter(tel),
		loggingFilter(logger),
	}
}

func recoveryFilter(logger log.Logger) http.FilterFunc {
	helper := log.NewHelper(logger)
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					helper.WithContext(r.Context()).Errorf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
					w.WriteHeader(stdhttp.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func metricsFilter(tel *Telemetry) http.FilterFunc {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			if operationalPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: stdhttp.StatusOK}
			next.ServeHTTP(sw, r)

			attrs := metric.WithAttributes(
				attribute.String("kind", "server"),
				attribute.String("operation", catchAllOperation),
				attribute.String("code", strconv.Itoa(sw.status)),
				attribute.String("reason", ""),
			)
			tel.RequestCounter.Add(r.Context(), 1, attrs)
			tel.SecondsHistogram.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}
}

func loggingFilter(logger log.Logger) http.FilterFunc {
	helper := log.NewHelper(logger)
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: stdhttp.StatusOK}
			next.ServeHTTP(sw, r)
			helper.WithContext(r.Context()).Infow(
				"kind", "server",
				"component", "http",
				"method", r.Method,
				"path", r.URL.Path,
				"code", sw.status,
				"latency", time.Since(start).Seconds(),
			)
		})
	}
}
