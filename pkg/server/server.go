// Package server is the Lumen preview server. It renders a tree provider
// per request, exposes Prometheus metrics, and pushes attribute patches
// over a websocket when the tree is re-rendered.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumen-ui/lumen/pkg/dom"
	"github.com/lumen-ui/lumen/pkg/reconcile"
	"github.com/lumen-ui/lumen/pkg/render"
)

// Provider returns the current tree to render. Called on every page
// request and on every reload, so it can re-read a fixture from disk.
type Provider func() (*dom.VNode, error)

// Config configures the preview server.
type Config struct {
	// Address is the listen address (default ":8380").
	Address string

	// MetricsNamespace is the Prometheus namespace (default "lumen").
	MetricsNamespace string

	// ShutdownTimeout bounds graceful shutdown (default 10s).
	ShutdownTimeout time.Duration

	// Render configures page rendering. The Warn field is overridden per
	// render so warnings can be counted and logged.
	Render render.Config
}

// Server serves rendered previews of a tree provider.
type Server struct {
	config   Config
	provider Provider
	logger   *slog.Logger
	metrics  *Metrics
	registry *prometheus.Registry
	hub      *Hub

	mu   sync.Mutex
	last *dom.VNode

	httpServer *http.Server
}

// New creates a preview server for the given provider.
func New(config Config, provider Provider) *Server {
	if config.Address == "" {
		config.Address = ":8380"
	}
	if config.MetricsNamespace == "" {
		config.MetricsNamespace = "lumen"
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	logger := slog.Default().With("component", "server")

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry, config.MetricsNamespace)

	return &Server{
		config:   config,
		provider: provider,
		logger:   logger,
		metrics:  metrics,
		registry: registry,
		hub:      NewHub(logger),
	}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.traceMiddleware)

	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.hub.HandleWS)
	r.Post("/reload", s.handleReload)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// Start runs the server until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "address", s.config.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.hub.CloseAll()
	return s.httpServer.Shutdown(shutdownCtx)
}

// newRenderer builds a renderer from the server's render config with the
// given warning sink.
func (s *Server) newRenderer(warn reconcile.Warner) *render.Renderer {
	cfg := s.config.Render
	cfg.Warn = warn
	return render.NewRenderer(cfg)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	html, tree, err := s.renderCurrent(r.Context())
	if err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.last = tree
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleReload re-renders the provider tree, diffs it against the last
// rendered tree, and broadcasts the resulting patches to websocket
// subscribers. Suppressed attributes come through as removeAttr patches,
// so connected previews never keep a stale attribute.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	next, err := s.provider()
	if err != nil {
		s.metrics.RenderErrors.Inc()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	prev := s.last
	s.last = next
	s.mu.Unlock()

	patches := reconcile.Diff(prev, next)
	renderer := s.newRenderer(nil)
	for i := range patches {
		if patches[i].Node != nil {
			if markup, err := renderer.RenderToString(patches[i].Node); err == nil {
				patches[i].Markup = markup
			}
		}
	}

	s.hub.Broadcast(patches)
	s.metrics.PatchesTotal.Add(float64(len(patches)))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"patches": len(patches)})
}

// renderCurrent renders the provider's current tree and records metrics.
func (s *Server) renderCurrent(ctx context.Context) (string, *dom.VNode, error) {
	_, span := startRenderSpan(ctx)
	defer span.End()

	start := time.Now()
	tree, err := s.provider()
	if err != nil {
		s.metrics.RenderErrors.Inc()
		recordSpanError(span, err)
		return "", nil, err
	}

	var warnings reconcile.Collector
	html, err := s.newRenderer(&warnings).RenderToString(tree)
	if err != nil {
		s.metrics.RenderErrors.Inc()
		recordSpanError(span, err)
		return "", nil, err
	}

	for _, warning := range warnings.Warnings {
		s.logger.Warn("reconcile warning", "warning", warning)
	}

	s.metrics.RendersTotal.Inc()
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	s.metrics.RenderBytes.Observe(float64(len(html)))
	s.metrics.WarningsTotal.Add(float64(len(warnings.Warnings)))
	annotateRenderSpan(span, len(html), len(warnings.Warnings))

	return html, tree, nil
}
