package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler answers uptime checks in front of the webhook.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Ping serves /health-check/{action}; only "ping" is known.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "ping":
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
	default:
		writeError(w, http.StatusBadRequest, "unknown health-check action")
	}
}
