// Package api configures and exposes the HTTP servers of the search proxy
// and of the knowledge base, with their routes, metrics, docs and middleware.
package api

import (
	"checkups/internal/api/handler"
	"checkups/internal/config"
	"checkups/pkg/controller"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// searchSpec contains the embedded OpenAPI specification of the search API.
//
//go:embed specs/search.yaml
var searchSpec []byte

const timeoutMessage = `{"error":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	CORS      controller.CORSOptions
	RateLimit controller.RateLimitOptions
	// Verifier enables bearer auth on the /search endpoints when set.
	Verifier *controller.TokenVerifier
	// Gatherer serves MetricsPath. prometheus.DefaultGatherer is used when nil.
	Gatherer prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) (Options, error) {
	opts := Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORS:              controller.CORSOptions{AllowOrigin: cfg.HTTP.AllowOrigin},
		RateLimit: controller.RateLimitOptions{
			PerSecond:         cfg.RateLimit.PerSecond,
			Burst:             cfg.RateLimit.Burst,
			TrustProxyHeaders: cfg.RateLimit.TrustProxyHeaders,
		},
	}

	if cfg.JWT.PublicKey != "" {
		v, err := controller.NewTokenVerifier(cfg.JWT.PublicKey)
		if err != nil {
			return Options{}, fmt.Errorf("could not create token verifier: %w", err)
		}
		opts.Verifier = v
	}

	return opts, nil
}

// NewMeterProvider returns an otel MeterProvider whose instruments are
// exported through reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewServer wires up and returns a configured *http.Server. It sets up:
// - the search page at /, whose server-side searches need a bearer token
//   when opts.Verifier is set
// - POST /search and, when history is enabled, GET /search/history
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI spec and Swagger UI
// - pprof endpoints for profiling
// The mux is wrapped with CORS, logging and rate limiting middlewares and a
// request timeout.
func NewServer(deps handler.Deps, opts Options) *http.Server {
	deps.Verifier = opts.Verifier
	h := handler.New(deps)
	auth := controller.WithBearerAuth(opts.Verifier)

	mux := http.NewServeMux()

	// GET patterns only: a method-less pattern would conflict with "GET /"
	mux.HandleFunc("GET /", h.Page)
	mux.Handle("POST /search", auth(http.HandlerFunc(h.Search)))
	if deps.History != nil {
		mux.Handle("GET /search/history", auth(http.HandlerFunc(h.History)))
	}

	// prometheus metrics server
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// specs file
	mux.HandleFunc("GET /specs/search.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(searchSpec)
	})
	// swagger playground
	mux.Handle("GET /docs/", v5emb.New(
		"Health Checkup Package Search",
		"/specs/search.yaml",
		"/docs/",
	))

	// pprof
	mux.Handle("GET /debug/pprof/", http.StripPrefix("/debug/pprof", controller.Pprof()))

	var root http.Handler = mux
	root = controller.NewRateLimiter(opts.RateLimit).Middleware(root)
	root = controller.WithCORS(opts.CORS)(root)
	root = controller.WithLogger(root)

	return newHTTPServer(root, opts)
}

// NewKnowledgeBaseServer serves the knowledge base engine at POST / the way
// the API Gateway integration calls it.
func NewKnowledgeBaseServer(kb *handler.KnowledgeBase, opts Options) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/", kb)

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	cors := opts.CORS
	cors.AllowMethods = []string{http.MethodPost, http.MethodOptions}

	var root http.Handler = mux
	root = controller.WithCORS(cors)(root)
	root = controller.WithLogger(root)

	return newHTTPServer(root, opts)
}

func newHTTPServer(root http.Handler, opts Options) *http.Server {
	if opts.RequestTimeout > 0 {
		root = http.TimeoutHandler(root, opts.RequestTimeout, timeoutMessage)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           root,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}
