package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/sua-pizza-api/internal/infra/http/handlers"
	"github.com/xavierca1/sua-pizza-api/internal/infra/http/middleware"
)

type Handlers struct {
	Customer *handlers.CustomerHandler
	Address  *handlers.AddressHandler
	Health   *handlers.HealthHandler
}

func New(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CrossOriginOpenerPolicy)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(middleware.Metrics)

	r.Get("/", handlers.Home)
	r.Handle("/metrics", promhttp.Handler())
	if h.Health != nil {
		r.Get("/health", h.Health.Handle)
	}

	if h.Customer != nil {
		r.Route("/clientes", func(r chi.Router) {
			r.Post("/registro", h.Customer.Register)
			r.Get("/", h.Customer.List)
			r.Put("/{id}", h.Customer.Update)
			r.Delete("/{id}", h.Customer.Delete)
		})
	}

	if h.Address != nil {
		r.Route("/enderecos", func(r chi.Router) {
			r.Post("/registro", h.Address.Register)
			r.Get("/", h.Address.List)
			r.Put("/{id}", h.Address.Update)
			r.Delete("/{id}", h.Address.Delete)
		})
	}

	return r
}
