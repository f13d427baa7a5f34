// Package server wires the inbound HTTP server and its per-request filters.
package server

import (
	stdhttp "net/http"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	"github.com/bionicotaku/lingo-services-greeting/internal/controllers"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPServer new an HTTP server serving the greeting on every route.
// Recovery, request metrics and request logging are installed as server
// filters: every route here is a raw mux handler, which kratos endpoint
// middleware would not wrap.
func NewHTTPServer(c *conf.Server, tel *Telemetry, greeting *controllers.GreetingHandler, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Filter(serverFilters(tel, logger)...),
	}
	if c.HTTP.Network != "" {
		opts = append(opts, http.Network(c.HTTP.Network))
	}
	if c.HTTP.Addr != "" {
		opts = append(opts, http.Address(c.HTTP.Addr))
	}
	if d, ok := c.HTTP.TimeoutDuration(); ok {
		opts = append(opts, http.Timeout(d))
	}

	srv := http.NewServer(opts...)

	srv.Handle("/healthz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
	}))

	srv.Handle("/readyz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		// 预留 readiness 校验钩子：本服务没有外部依赖，始终就绪。
		w.WriteHeader(stdhttp.StatusOK)
	}))

	srv.Handle("/metrics", promhttp.HandlerFor(tel.PrometheusRegistry, promhttp.HandlerOpts{}))

	// Catch-all greeting route. Registered last so the operational endpoints
	// above keep their exact-path matches.
	srv.HandlePrefix("/", greeting)
	return srv
}
