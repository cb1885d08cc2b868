// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware of the Guidiqo backend.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"guidiqo/internal/api/handler/v1handler"
	"guidiqo/internal/config"
	"guidiqo/pkg/controller"
	"guidiqo/pkg/logger"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is written when a request exceeds Options.RequestTimeout.
const timeoutBody = `{"code":"TIMEOUT","message":"délai dépassé"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures bearer-token verification. An empty public
	// key disables every authenticated route.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// DebugAddr is the private TCP address of the pprof server, e.g. "127.0.0.1:6060".
	// Empty disables it.
	DebugAddr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds request handling. PDF exports are exempt.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins restricts CORS. Empty allows any origin.
	AllowedOrigins []string
	// TrustedProxies is the number of reverse proxies appending to X-Forwarded-For.
	TrustedProxies int
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		DebugAddr:         cfg.HTTP.DebugAddr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		TrustedProxies:    cfg.HTTP.TrustedProxies,
	}
}

type Deps struct {
	v1handler.Deps

	// MeterProvider records HTTP metrics. Its readings must be exported to Gatherer.
	MeterProvider metric.MeterProvider
	// Gatherer is served on MetricsPath. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - the JSON API under /api
// It also wraps the mux with CORS, logging, panic recovery, metrics and a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/docs/", v5emb.New(
		"Guidiqo API",
		"/specs/v1.yaml",
		"/docs/",
	))

	// v1 api
	var secHandler *v1handler.SecHandler
	if opts.SecHandlerOptions != nil && opts.SecHandlerOptions.PublicKey != "" {
		var err error
		if secHandler, err = v1handler.NewSecHandler(opts.SecHandlerOptions); err != nil {
			return nil, fmt.Errorf("could not create sec handler: %w", err)
		}
	} else {
		logger.Warn(context.Background(), "no auth public key configured, authenticated routes are disabled")
	}
	v1handler.New(deps.Deps, secHandler, opts.TrustedProxies).Register(mux)

	handler := withTimeout(mux, opts.RequestTimeout)

	if deps.MeterProvider != nil {
		var err error
		if handler, err = controller.WithMetrics(handler, deps.MeterProvider); err != nil {
			return nil, fmt.Errorf("could not create metrics middleware: %w", err)
		}
	}

	handler = controller.WithRecover(handler)

	// logger
	handler = controller.WithLogger(handler)

	// cors
	handler = controller.WithCORS(handler, opts.AllowedOrigins...)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// withTimeout applies http.TimeoutHandler to every request except PDF
// exports, which carry their own deadline.
func withTimeout(next http.Handler, timeout time.Duration) http.Handler {
	if timeout <= 0 {
		return next
	}
	limited := http.TimeoutHandler(next, timeout, timeoutBody)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/export.pdf") {
			next.ServeHTTP(w, r)

			return
		}
		limited.ServeHTTP(w, r)
	})
}

// NewDebugServer returns the pprof server listening on DebugAddr, or nil when
// DebugAddr is empty. It is kept off the public listener because pprof has no
// access control.
func NewDebugServer(opts Options) *http.Server {
	if opts.DebugAddr == "" {
		return nil
	}

	return &http.Server{
		Addr:              opts.DebugAddr,
		Handler:           controller.WithRecover(controller.PprofMux()),
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		IdleTimeout:       opts.IdleTimeout,
	}
}
