package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/espacios/espacios-api/internal/platform/logger"
)

// Handlers bundles the handlers the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Spaces  *SpaceHandler
	Rentals *RentalHandler
	Reviews *ReviewHandler
}

// NewRouter builds the chi router with the application's routes and the
// standard middleware stack.
func NewRouter(h Handlers, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(requestLogger(log))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
	})

	r.Route("/spaces", func(r chi.Router) {
		r.Post("/", h.Spaces.Create)
		r.Get("/", h.Spaces.List)
		r.Get("/{id}", h.Spaces.Get)
		r.Patch("/{id}/availability", h.Spaces.UpdateAvailability)
		r.Delete("/{id}", h.Spaces.Delete)
	})

	r.Post("/rentals", h.Rentals.Create)
	r.Post("/reviews", h.Reviews.Create)

	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/rentals", h.Rentals.ListByUser)
		r.Get("/reviews", h.Reviews.ListForUser)
		r.Get("/rating", h.Reviews.AverageRating)
	})

	return r
}

// requestLogger attaches a request-scoped logger to the context and logs
// each request once it completes.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLog := log.With(
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			ctx := logger.WithLogger(r.Context(), reqLog)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLog.Info("request completed",
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
