package routes

import (
	"net/http"

	"github.com/afandyna/ser-Health/internal/api/handlers"
	"github.com/afandyna/ser-Health/internal/api/middleware"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	directoryHandler   *handlers.DirectoryHandler
	nearbyHandler      *handlers.NearbyHospitalsHandler
	geolocationHandler *handlers.GeolocationHandler
	registryHandler    *handlers.RegistryHandler
	bookingHandler     *handlers.BookingHandler
	graphqlHandler     http.Handler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware and metrics may be nil.
func NewRouter(
	directoryHandler *handlers.DirectoryHandler,
	nearbyHandler *handlers.NearbyHospitalsHandler,
	geolocationHandler *handlers.GeolocationHandler,
	registryHandler *handlers.RegistryHandler,
	bookingHandler *handlers.BookingHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                http.NewServeMux(),
		directoryHandler:   directoryHandler,
		nearbyHandler:      nearbyHandler,
		geolocationHandler: geolocationHandler,
		registryHandler:    registryHandler,
		bookingHandler:     bookingHandler,
		cacheMiddleware:    cacheMiddleware,
		allowedOrigins:     allowedOrigins,
		metrics:            metrics,
	}
}

// WithGraphQL mounts the read-only GraphQL endpoint at /graphql.
func (r *Router) WithGraphQL(h http.Handler) *Router {
	r.graphqlHandler = h
	return r
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Directory endpoints
	r.mux.HandleFunc("GET /api/directory/{kind}", r.directoryHandler.ListDirectory)
	r.mux.HandleFunc("GET /api/directory/{kind}/categories", r.directoryHandler.Categories)
	r.mux.HandleFunc("GET /api/emergency", r.directoryHandler.Emergency)
	r.mux.HandleFunc("GET /api/search", r.directoryHandler.Search)

	// Places passthrough
	r.mux.HandleFunc("POST /api/nearby-hospitals", r.nearbyHandler.NearbyHospitals)

	// Geolocation endpoints
	r.mux.HandleFunc("GET /api/geocode", r.geolocationHandler.Geocode)
	r.mux.HandleFunc("GET /api/reverse-geocode", r.geolocationHandler.ReverseGeocode)
	r.mux.HandleFunc("GET /api/cities", r.geolocationHandler.Cities)

	// Registration and admin review
	if r.registryHandler != nil {
		r.mux.HandleFunc("POST /api/listings/{kind}", r.registryHandler.Register)
		r.mux.HandleFunc("GET /api/admin/listings/{kind}/pending", r.registryHandler.Pending)
		r.mux.HandleFunc("POST /api/admin/listings/{kind}/{id}/approve", r.registryHandler.Approve)
		r.mux.HandleFunc("DELETE /api/admin/listings/{kind}/{id}", r.registryHandler.Reject)
	}

	// Booking endpoints
	if r.bookingHandler != nil {
		r.mux.HandleFunc("POST /api/bookings", r.bookingHandler.Book)
		r.mux.HandleFunc("POST /api/bookings/{id}/cancel", r.bookingHandler.Cancel)
		r.mux.HandleFunc("GET /api/doctors/{id}/bookings", r.bookingHandler.ListByDoctor)
	}

	if r.graphqlHandler != nil {
		r.mux.Handle("/graphql", r.graphqlHandler)
	}

	// Last wrap is outermost; CORS wraps everything so cache hits carry its headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
