/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Lightweight, context-based, RESTful route patterns.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for a dashboard frontend

ROUTE GROUPS:
  /api/sales          Process sales
  /api/transactions   Transaction history
  /api/reports/*      Revenue breakdowns and the daily report
  /api/inventory/*    Stock levels and supply additions
  /api/pumps/*        Pump listing and status changes

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Sales
		r.Post("/sales", h.ProcessSale)

		// Transaction history
		r.Get("/transactions", h.ListTransactions)

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily", h.DailyReport)
			r.Get("/fuel", h.FuelSummary)
			r.Get("/pumps", h.PumpPerformance)
			r.Get("/hours", h.HourlySales)
			r.Get("/payments", h.PaymentBreakdown)
		})

		// Inventory
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.ListInventory)
			r.Post("/supply", h.AddSupply)
		})

		// Pumps
		r.Route("/pumps", func(r chi.Router) {
			r.Get("/", h.ListPumps)
			r.Put("/{id}/status", h.SetPumpStatus)
		})
	})

	return r
}
