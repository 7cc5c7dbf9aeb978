// Package server assembles the HTTP handler: Connect services, health and
// metrics endpoints, and the front end's static files.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/brewandbake/internal/auth"
	"github.com/mmynk/brewandbake/internal/metrics"
	"github.com/mmynk/brewandbake/internal/middleware"
	"github.com/mmynk/brewandbake/internal/service"
	"github.com/mmynk/brewandbake/internal/session"
	"github.com/mmynk/brewandbake/internal/storage"
	"github.com/mmynk/brewandbake/pkg/api"
)

const shutdownTimeout = 5 * time.Second

// Deps are the components the handler is built from.
type Deps struct {
	Store    storage.Store
	Sessions *session.Store
	Tokens   *auth.TokenManager
	Metrics  *metrics.Metrics
	// Gatherer backs /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
	// StaticDir is served for every path that is not an API route. Optional.
	StaticDir string
}

// NewHandler builds the HTTP handler. It speaks HTTP/2 without TLS (h2c) as
// well as HTTP/1.1.
func NewHandler(d Deps) http.Handler {
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	logging := middleware.LoggingInterceptor(d.Metrics)
	public := connect.WithInterceptors(logging)
	withSession := connect.WithInterceptors(logging, middleware.RequireSession(d.Tokens, service.PublicOrderProcedures...))

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)
	r.Use(cors)

	mount := func(path string, h http.Handler) {
		r.Handle(path+"*", h)
	}
	mount(api.NewMenuServiceHandler(service.NewMenuService(), public))
	mount(api.NewOrderServiceHandler(service.NewOrderService(d.Sessions, d.Tokens, d.Metrics), withSession))
	mount(api.NewContactServiceHandler(service.NewContactService(d.Store, d.Metrics), public))
	mount(api.NewContentServiceHandler(service.NewContentService(), public))

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", healthHandler(d.Store))
	r.Get("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if d.StaticDir != "" {
		r.NotFound(staticHandler(d.StaticDir))
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	return h2c.NewHandler(r, &http2.Server{})
}

func healthHandler(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			slog.Warn("Health check failed", "error", err)
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
