package api

import (
	"net/http"

	"noir-be/internal/admin"
	"noir-be/internal/cart"
	"noir-be/internal/catalog"
	"noir-be/internal/checkout"
	"noir-be/internal/httpx"
	"noir-be/internal/logger"
	"noir-be/internal/middleware"
	"noir-be/internal/mode"
	"noir-be/internal/signup"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

// Deps carries every service the HTTP surface depends on. Catalog and
// Checkout are nil when the commerce credentials are missing; their
// routes then render a configuration error instead of crashing.
type Deps struct {
	Catalog  catalog.Service
	Carts    *cart.Manager
	Mode     mode.Service
	Checkout checkout.Service
	Signup   signup.Service
	Auth     *admin.Auth

	CORSOrigin string
}

// NewRouter assembles the API surface.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{deps.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	products := &productHandler{catalog: deps.Catalog}
	carts := &cartHandler{catalog: deps.Catalog, carts: deps.Carts, checkout: deps.Checkout}
	status := &statusHandler{mode: deps.Mode}
	signups := &signupHandler{signup: deps.Signup}
	admins := &adminHandler{auth: deps.Auth}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.list)
		r.Get("/products/{handle}", products.detail)
		r.Post("/products/{handle}/resolve", products.resolve)

		r.Get("/cart", carts.get)
		r.Post("/cart/items", carts.addItem)
		r.Patch("/cart/items/{variantID}", carts.updateQuantity)
		r.Delete("/cart/items/{variantID}", carts.removeItem)
		r.Delete("/cart", carts.clear)
		r.Post("/checkout", carts.checkoutURL)

		r.Get("/status", status.get)
		r.With(middleware.AdminOnly(deps.Auth)).Post("/status", status.set)

		r.Post("/signup", signups.register)

		r.Post("/admin/login", admins.login)
		r.With(middleware.AdminOnly(deps.Auth)).Get("/admin/signups", signups.list)
	})

	return r
}
