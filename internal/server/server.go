package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/Bouquet_Go/docs"
	"github.com/osse101/Bouquet_Go/internal/eventlog"
	"github.com/osse101/Bouquet_Go/internal/garden"
	"github.com/osse101/Bouquet_Go/internal/handler"
	"github.com/osse101/Bouquet_Go/internal/logger"
	"github.com/osse101/Bouquet_Go/internal/metrics"
	"github.com/osse101/Bouquet_Go/internal/narrative"
	"github.com/osse101/Bouquet_Go/internal/repository"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Deps are the services the routes call into
type Deps struct {
	Garden   garden.Service
	EventLog eventlog.Service
	Saves    repository.Garden
	Renderer *narrative.Renderer
	// Store is pinged by /readyz; nil when there is no database
	Store handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree
func NewRouter(opts Options, deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(RequestLimitPerWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	gh := handler.NewGardenHandler(deps.Garden, deps.Renderer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/garden", gh.HandleGetGarden)
		r.Post("/day/advance", gh.HandleAdvanceDay)

		r.Route("/plots", func(r chi.Router) {
			r.Post("/", gh.HandleBuyPlot)
			r.Route("/{index}", func(r chi.Router) {
				r.Post("/water", gh.HandleWater())
				r.Post("/weed", gh.HandleWeed())
				r.Post("/fertilize", gh.HandleFertilize())
				r.Post("/plant", gh.HandlePlant)
				r.Post("/harvest", gh.HandleHarvest)
				r.Post("/store", gh.HandleStorePlot())
			})
		})

		r.Route("/storage/{index}", func(r chi.Router) {
			r.Post("/place", gh.HandlePlacePlot)
			r.Post("/mulch", gh.HandleMulch())
			r.Post("/eat", gh.HandleEat())
		})

		r.Post("/bouquets", gh.HandleCompose)

		r.Route("/auction", func(r chi.Router) {
			r.Post("/start", gh.HandleStartAuction)
			r.Post("/accept", gh.HandleAcceptEarly)
			r.Post("/collect", gh.HandleCollectEarnings)
		})

		r.Route("/saves", func(r chi.Router) {
			r.Get("/", handler.HandleListSaves(deps.Saves))
			r.Post("/save", gh.HandleSave)
			r.Post("/load", gh.HandleLoad)
		})

		if deps.EventLog != nil {
			r.Get("/events", handler.HandleGetHistory(deps.EventLog))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublic(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		sanitized := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
