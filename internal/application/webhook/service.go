package webhook

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/whatsapp-orchestrator/internal/domain"
	"github.com/whatsapp-orchestrator/internal/pkg/id"
	"github.com/whatsapp-orchestrator/internal/pkg/validate"
)

// Config is the explicit configuration the service is built with.
type Config struct {
	// VerifyToken is the shared secret agreed with the publishing platform.
	// An empty token never matches.
	VerifyToken string
}

// Service implements the two branches of the webhook endpoint independently
// of the transport that carries them.
type Service interface {
	// Verify checks a subscription handshake and returns the challenge to echo.
	// Errors wrap domain.ErrMalformedRequest or domain.ErrVerificationFailed.
	Verify(ctx context.Context, req domain.VerificationRequest) (string, error)
	// Acknowledge accepts a message notification without inspecting it.
	Acknowledge(ctx context.Context) domain.Ack
}

type service struct {
	verifyToken []byte
	log         zerolog.Logger
	newID       func() string
}

// NewService returns a stateless Service; it is safe for concurrent use.
func NewService(cfg Config, log zerolog.Logger) Service {
	return &service{
		verifyToken: []byte(cfg.VerifyToken),
		log:         log.With().Str("component", "webhook").Logger(),
		newID:       id.New,
	}
}

func (s *service) Verify(_ context.Context, req domain.VerificationRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		s.log.Info().Str("reason", err.Error()).Msg("verification rejected: missing parameters")
		return "", fmt.Errorf("%s: %w", err.Error(), domain.ErrMalformedRequest)
	}
	if req.Mode != domain.ModeSubscribe {
		s.log.Info().Str("mode", req.Mode).Msg("verification rejected: unexpected mode")
		return "", fmt.Errorf("mode %q: %w", req.Mode, domain.ErrVerificationFailed)
	}
	if len(s.verifyToken) == 0 {
		s.log.Warn().Msg("verification rejected: verify token is not configured")
		return "", fmt.Errorf("verify token not configured: %w", domain.ErrVerificationFailed)
	}
	if subtle.ConstantTimeCompare([]byte(req.VerifyToken), s.verifyToken) != 1 {
		s.log.Info().Msg("verification rejected: token mismatch")
		return "", fmt.Errorf("token mismatch: %w", domain.ErrVerificationFailed)
	}
	s.log.Info().Msg("webhook subscription verified")
	return req.Challenge, nil
}

func (s *service) Acknowledge(_ context.Context) domain.Ack {
	s.log.Debug().Str("receipt_id", s.newID()).Msg("message notification acknowledged")
	return domain.Ack{Status: domain.AckStatus}
}
