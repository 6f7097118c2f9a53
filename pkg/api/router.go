// Package api provides the REST HTTP server for the campus map.
package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"campusmap/internal/logger"
	"campusmap/pkg/api/auth"
	"campusmap/pkg/api/handlers"
	apimiddleware "campusmap/pkg/api/middleware"
	"campusmap/pkg/metrics"
	"campusmap/pkg/store"
)

// NewRouter creates and configures the chi router with all middleware and routes.
//
// The router is configured with:
//   - Request ID middleware for request tracking
//   - Real IP extraction for proper client identification
//   - Custom request logging using the internal logger
//   - Panic recovery to prevent server crashes
//   - Request timeout to prevent hung requests
//
// Read routes are public so the map loads without credentials; every
// mutating route requires an admin JWT.
//
// Routes:
//   - GET /health - Liveness probe
//   - GET /health/ready - Readiness probe (datastore reachability)
//   - GET /metrics - Prometheus exposition (when a registry is configured)
//   - POST /api/auth/login - Admin authentication
//   - POST /api/auth/refresh - Token refresh
//   - GET /api/auth/me - Current admin info
//   - /api/buildings/* - Building CRUD + scoped floors/rooms/staff
//   - /api/floors/* - Floor CRUD + scoped rooms
//   - /api/rooms/*, /api/staff/*, /api/events/* - Entity CRUD
//   - /api/walkpaths/*, /api/drivepaths/* - Path CRUD
//   - /api/settings/* - Settings list/create/get/update
func NewRouter(st store.Store, jwtService *auth.JWTService, registry *prometheus.Registry, httpMetrics *metrics.HTTPMetrics) http.Handler {
	r := chi.NewRouter()

	// Middleware stack - order matters
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(requestMetrics(httpMetrics))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	healthHandler := handlers.NewHealthHandler(st)

	// Health routes - unauthenticated
	r.Route("/health", func(r chi.Router) {
		r.Get("/", healthHandler.Liveness)
		r.Get("/ready", healthHandler.Readiness)
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))
	}

	// Root redirect to health for convenience
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/health", http.StatusTemporaryRedirect)
	})

	authHandler := handlers.NewAuthHandler(st, jwtService)
	buildingHandler := handlers.NewBuildingHandler(st)
	floorHandler := handlers.NewFloorHandler(st)
	roomHandler := handlers.NewRoomHandler(st)
	staffHandler := handlers.NewStaffHandler(st)
	eventHandler := handlers.NewEventHandler(st)
	walkpathHandler := handlers.NewWalkpathHandler(st)
	drivepathHandler := handlers.NewDrivepathHandler(st)
	settingsHandler := handlers.NewSettingsHandler(st)

	r.Route("/api", func(r chi.Router) {
		// Auth routes
		r.Route("/auth", func(r chi.Router) {
			// Public endpoints
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Authenticated endpoint
			r.Group(func(r chi.Router) {
				r.Use(apimiddleware.JWTAuth(jwtService))
				r.Get("/me", authHandler.Me)
			})
		})

		// Public reads - the map client needs these without credentials
		r.Group(func(r chi.Router) {
			r.Get("/buildings", buildingHandler.List)
			r.Get("/buildings/{id}", buildingHandler.Get)
			r.Get("/buildings/{id}/floors", buildingHandler.Floors)
			r.Get("/buildings/{id}/rooms", buildingHandler.Rooms)
			r.Get("/buildings/{id}/staff", buildingHandler.Staff)

			r.Get("/floors", floorHandler.List)
			r.Get("/floors/{id}", floorHandler.Get)
			r.Get("/floors/{id}/rooms", floorHandler.Rooms)

			r.Get("/rooms", roomHandler.List)
			r.Get("/rooms/{id}", roomHandler.Get)

			r.Get("/staff", staffHandler.List)
			r.Get("/staff/{id}", staffHandler.Get)

			r.Get("/events", eventHandler.List)
			r.Get("/events/{id}", eventHandler.Get)

			r.Get("/walkpaths", walkpathHandler.List)
			r.Get("/walkpaths/{id}", walkpathHandler.Get)

			r.Get("/drivepaths", drivepathHandler.List)
			r.Get("/drivepaths/{id}", drivepathHandler.Get)

			r.Get("/settings", settingsHandler.List)
			r.Get("/settings/{key}", settingsHandler.Get)
		})

		// Mutations - admin JWT required
		r.Group(func(r chi.Router) {
			r.Use(apimiddleware.JWTAuth(jwtService))

			r.Post("/buildings", buildingHandler.Create)
			r.Put("/buildings/{id}", buildingHandler.Update)
			r.Delete("/buildings/{id}", buildingHandler.Delete)

			r.Post("/floors", floorHandler.Create)
			r.Put("/floors/{id}", floorHandler.Update)
			r.Delete("/floors/{id}", floorHandler.Delete)

			r.Post("/rooms", roomHandler.Create)
			r.Put("/rooms/{id}", roomHandler.Update)
			r.Delete("/rooms/{id}", roomHandler.Delete)

			r.Post("/staff", staffHandler.Create)
			r.Put("/staff/{id}", staffHandler.Update)
			r.Delete("/staff/{id}", staffHandler.Delete)

			r.Post("/events", eventHandler.Create)
			r.Put("/events/{id}", eventHandler.Update)
			r.Delete("/events/{id}", eventHandler.Delete)

			r.Post("/walkpaths", walkpathHandler.Create)
			r.Put("/walkpaths/{id}", walkpathHandler.Update)
			r.Delete("/walkpaths/{id}", walkpathHandler.Delete)

			r.Post("/drivepaths", drivepathHandler.Create)
			r.Put("/drivepaths/{id}", drivepathHandler.Update)
			r.Delete("/drivepaths/{id}", drivepathHandler.Delete)

			r.Post("/settings", settingsHandler.Create)
			r.Put("/settings/{key}", settingsHandler.Update)
		})
	})

	return r
}

// isHealthPath returns true if the request path is a healthcheck endpoint.
func isHealthPath(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/")
}

// requestLogger is a custom middleware that logs requests using the internal logger.
//
// It logs:
//   - Request start (DEBUG level): method, path, remote addr
//   - Request completion (INFO level): method, path, status, duration
//   - Healthcheck requests are logged at DEBUG level to reduce noise
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := chimiddleware.GetReqID(r.Context())

		logger.Debug("API request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		// Wrap response writer to capture status code
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		logArgs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration.String(),
		}

		if isHealthPath(r.URL.Path) {
			logger.Debug("API request completed", logArgs...)
		} else {
			logger.Info("API request completed", logArgs...)
		}
	})
}

// requestMetrics counts completed requests by method and status class.
func requestMetrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			m.RecordRequest(r.Method, fmt.Sprintf("%dxx", ww.Status()/100))
		})
	}
}
