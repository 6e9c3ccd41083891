package routes

import (
	"net/http"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/api/handlers"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/api/middleware"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	yachtHandler *handlers.YachtHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	yachtHandler *handlers.YachtHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		yachtHandler:    yachtHandler,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Yacht catalog endpoints
	r.mux.HandleFunc("GET /api/yachts", r.yachtHandler.ListYachts)
	r.mux.HandleFunc("GET /api/yachts/{slug}", r.yachtHandler.GetYacht)

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
