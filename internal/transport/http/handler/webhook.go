package handler

import (
	"net/http"

	"github.com/whatsapp-orchestrator/internal/application/webhook"
	"github.com/whatsapp-orchestrator/internal/domain"
	"github.com/whatsapp-orchestrator/internal/transport/status"
)

// WebhookHandler serves the platform webhook: GET runs the subscription
// handshake, every other method acknowledges a message notification.
type WebhookHandler struct {
	svc webhook.Service
}

func NewWebhookHandler(svc webhook.Service) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.verify(w, r)
		return
	}
	h.acknowledge(w, r)
}

func (h *WebhookHandler) verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.VerificationRequest{
		Mode:        q.Get(domain.ParamMode),
		VerifyToken: q.Get(domain.ParamVerifyToken),
		Challenge:   q.Get(domain.ParamChallenge),
	}
	challenge, err := h.svc.Verify(r.Context(), req)
	if err != nil {
		writeText(w, status.FromVerifyError(err), domain.VerificationFailedBody)
		return
	}
	writeText(w, http.StatusOK, challenge)
}

// acknowledge never reads the request body.
func (h *WebhookHandler) acknowledge(w http.ResponseWriter, r *http.Request) {
	ack := h.svc.Acknowledge(r.Context())
	writeRaw(w, http.StatusOK, "application/json", ack.Body())
}
