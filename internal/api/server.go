// Package api configures and exposes the HTTP server, routes,
// metrics and related middleware for the tracking service.
package api

import (
	"fmt"
	"net/http"
	"time"
	"tracker/internal/api/handler/v1handler"
	"tracker/internal/config"
	"tracker/pkg/controller"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	pprofPrefix = "/debug/pprof"
	healthPath  = "/healthz"
)

// Options configures the listener, its timeouts and the operational routes.
// Zero durations keep the net/http defaults.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds each request through http.TimeoutHandler.
	RequestTimeout time.Duration
	MaxHeaderBytes int

	// MetricsPath serves the default prometheus registry, which also carries
	// the tracker's OpenTelemetry instruments.
	MetricsPath string
	// AllowedOrigins restricts CORS to the listed origins. Empty allows any.
	AllowedOrigins []string
}

func NewOptions(cfg *config.Config) Options {
	h := cfg.HTTP

	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		Addr:              h.Addr,
		ReadTimeout:       h.ReadTimeout,
		ReadHeaderTimeout: h.ReadHeaderTimeout,
		WriteTimeout:      h.WriteTimeout,
		IdleTimeout:       h.IdleTimeout,
		RequestTimeout:    h.RequestTimeout,
		MaxHeaderBytes:    h.MaxHeaderBytes,
		MetricsPath:       h.MetricsPath,
		AllowedOrigins:    h.AllowedOrigins,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer builds the HTTP server. /v1 is guarded by bearer authentication
// when a public key is configured; /healthz, metrics and pprof stay open.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(controller.WithLogger, controller.CORS(opts.AllowedOrigins))

	r.Get(healthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler())
	}
	r.Mount(pprofPrefix, controller.PprofMux(pprofPrefix))

	r.With(secHandler.Middleware).Mount("/v1", v1handler.New(deps.Deps).Routes())

	var handler http.Handler = r
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

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
