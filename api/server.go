/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/login                Token issuance (public)
  /api/complaints           Public intake, authenticated listing
  /api/cleaning/*           Cleaning checklists (authenticated)
  /api/security/*           Patrol logs (authenticated)
  /api/maintenance/*        Repair logs (authenticated)
  /api/records/*            Validate and delete (authenticated)
  /api/dashboard            Summary counters (authenticated)
  /api/ws                   Live change feed (authenticated)

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

// RouterOptions carry the deployment knobs the router needs.
type RouterOptions struct {
	AllowedOrigins []string
	CORSMaxAge     int
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           opts.CORSMaxAge,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints: login and complaint intake
		r.Post("/login", h.Login)
		r.Post("/complaints", h.SubmitComplaint)

		// Everything else requires a session
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Route("/complaints", func(r chi.Router) {
				r.Get("/", h.ListComplaints)
				r.Post("/{id}/status", h.SetComplaintStatus)
			})

			r.Route("/cleaning", func(r chi.Router) {
				r.Get("/", h.ListCleaning)
				r.Post("/", h.SubmitCleaning)
				r.Get("/today", h.CleaningToday)
				r.Get("/recap", h.CleaningRecap)
				r.Get("/rooms", h.ListRooms)
			})

			r.Route("/security", func(r chi.Router) {
				r.Get("/", h.ListSecurity)
				r.Post("/", h.SubmitSecurity)
				r.Get("/today", h.SecurityToday)
				r.Get("/recap", h.SecurityRecap)
				r.Get("/areas", h.ListAreas)
			})

			r.Route("/maintenance", func(r chi.Router) {
				r.Get("/", h.ListMaintenance)
				r.Post("/", h.SubmitMaintenance)
				r.Post("/{id}/cost", h.UpdateMaintenanceCost)
				r.Get("/recap", h.MaintenanceRecap)
			})

			// Record lifecycle, shared across collections
			r.Route("/records/{collection}/{id}", func(r chi.Router) {
				r.Post("/validate", h.ValidateRecord)
				r.Delete("/", h.DeleteRecord)
			})

			r.Get("/dashboard", h.Dashboard)
			r.Get("/ws", h.Watch)
		})
	})

	return r
}
