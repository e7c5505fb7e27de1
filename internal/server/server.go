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

	"github.com/osse101/Armory_Go/internal/crafting"
	"github.com/osse101/Armory_Go/internal/database"
	"github.com/osse101/Armory_Go/internal/equipment"
	"github.com/osse101/Armory_Go/internal/eventlog"
	"github.com/osse101/Armory_Go/internal/handler"
	"github.com/osse101/Armory_Go/internal/hero"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/metrics"
	"github.com/osse101/Armory_Go/internal/mission"
)

// Services groups the domain services the HTTP API exposes
type Services struct {
	Equipment equipment.Service
	Crafting  crafting.Service
	Hero      hero.Service
	Mission   mission.Service
	Eventlog  eventlog.Service
}

// Options configures the HTTP edge
type Options struct {
	Port              int
	ResolveTimeout    time.Duration
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, services Services) *Server {
	r := NewRouter(opts, dbPool, services)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter builds the middleware stack and every route
func NewRouter(opts Options, dbPool database.Pool, services Services) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	limiter := NewRateLimiter(opts.RateLimitRequests, opts.RateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	equipmentHandler := handler.NewEquipmentHandler(services.Equipment, services.Crafting, opts.ResolveTimeout)
	heroHandler := handler.NewHeroHandler(services.Hero)
	missionHandler := handler.NewMissionHandler(services.Mission)
	adminEquipmentHandler := handler.NewAdminEquipmentHandler(services.Equipment)
	adminEventsHandler := handler.NewAdminEventsHandler(services.Eventlog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", equipmentHandler.HandleList)
			r.Route("/{slug}", func(r chi.Router) {
				r.Get("/", equipmentHandler.HandleGet)
				r.Delete("/", equipmentHandler.HandleDelete)
				r.Get("/recipe", equipmentHandler.HandleGetRecipe)
				r.Get("/raw-cost", equipmentHandler.HandleGetRawCost)
				r.Get("/final-products", equipmentHandler.HandleGetFinalProducts)
			})
		})

		r.Route("/heroes", func(r chi.Router) {
			r.Get("/", heroHandler.HandleList)
			r.Post("/bulk", heroHandler.HandleBulkUpsert)
			r.Get("/{slug}", heroHandler.HandleGet)
			r.Delete("/{slug}", heroHandler.HandleDelete)
		})

		r.Route("/missions", func(r chi.Router) {
			r.Get("/", missionHandler.HandleList)
			r.Post("/bulk", missionHandler.HandleBulkUpsert)
			r.Get("/{slug}", missionHandler.HandleGet)
			r.Delete("/{slug}", missionHandler.HandleDelete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/equipment/sync", adminEquipmentHandler.HandleSync)
			r.Get("/events", adminEventsHandler.HandleGetEvents)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router for in-process tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
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
		start := time.Now()

		if isUnlogged(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honour an upstream request id so traces line up across hops
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) ||
			strings.EqualFold(k, HeaderAuthorization) ||
			strings.EqualFold(k, HeaderCookie) {
			sanitized[k] = []string{RedactedValue}
			continue
		}
		sanitized[k] = v
	}
	return sanitized
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
