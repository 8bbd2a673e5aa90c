package http

import (
	"github.com/rs/zerolog"
	"github.com/whatsapp-orchestrator/internal/application/webhook"
)

// Deps holds everything the router needs to build its handlers.
type Deps struct {
	Logger     zerolog.Logger
	WebhookSvc webhook.Service
}
