package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/voltlab/device-hub/internal/api/handlers"
	"github.com/voltlab/device-hub/internal/api/middleware"
	"github.com/voltlab/device-hub/internal/config"
	"github.com/voltlab/device-hub/internal/service"
	"github.com/voltlab/device-hub/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg)
	deviceHandler := handlers.NewDeviceHandler(services.Device)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Auth routes; session resolution happens inside the handlers so
		// logout stays reachable without a valid session.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
			r.Delete("/me", authHandler.Delete)
			r.Get("/exists", authHandler.Exists)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.CurrentUser(services.Auth))

			r.Route("/devices", func(r chi.Router) {
				r.Post("/", deviceHandler.Create)
				r.Get("/", deviceHandler.List)
				r.Get("/{id}", deviceHandler.Get)
				r.Put("/{id}/status", deviceHandler.UpdateStatus)
				r.Delete("/{id}", deviceHandler.Delete)
				r.Get("/{id}/events", deviceHandler.ListEvents)
				r.Post("/{id}/events", deviceHandler.RecordEvent)
			})
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
