package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/whatsapp-orchestrator/internal/config"
	"github.com/whatsapp-orchestrator/internal/transport/http/handler"
	appmiddleware "github.com/whatsapp-orchestrator/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)

	healthH := handler.NewHealthHandler()
	webhookH := handler.NewWebhookHandler(deps.WebhookSvc)

	r.Route("/v1", func(r chi.Router) {
		// Callback URLs are registered as typed, trailing slash included.
		r.Use(chimiddleware.StripSlashes)

		// Any method: GET is the handshake, everything else is a notification.
		r.HandleFunc("/webhook", webhookH.Handle)

		// The webhook is called server-to-server; only operational routes need CORS.
		r.Group(func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   cfg.AllowedOrigins,
				AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: false,
				MaxAge:           300,
			}))
			r.Get("/health-check/{action}", healthH.Ping)
			r.Post("/health-check/{action}", healthH.Ping)
		})
	})

	return r
}
