package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nxtgenhub/lead-relay/internal/infra/http/handlers"
	"github.com/nxtgenhub/lead-relay/internal/infra/http/middleware"
)

type Deps struct {
	EmailHandler   *handlers.EmailHandler
	HealthHandler  *handlers.HealthHandler
	RateLimiter    *middleware.RateLimiter // nil disables limiting
	AllowedOrigins []string
	AccessLog      bool
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if d.AccessLog {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     d.AllowedOrigins,
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:     []string{"X-Relay-ID"},
		AllowCredentials:   true,
		OptionsPassthrough: false,
		MaxAge:             300,
	}))

	send := func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Handler)
		}
		r.Post("/send-email", d.EmailHandler.SendEmail)
		r.Post("/send", d.EmailHandler.SendEmail)
	}

	r.Route("/api", send)
	// The monolith deployment mounted the same handlers at the root.
	r.Group(send)

	r.Get("/health", d.HealthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
