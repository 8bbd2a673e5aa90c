package secretsinfra

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/whatsapp-orchestrator/internal/config"
)

// SecretGetter reads a string secret by ID.
type SecretGetter interface {
	GetString(ctx context.Context, secretID string) (string, error)
}

// ResolveVerifyToken returns the verify token to run with. A VERIFY_TOKEN set
// in the environment wins; otherwise, when VERIFY_TOKEN_SECRET_ID is set, the
// secret is read once through open. Any failure leaves the token empty so the
// handshake fails closed.
func ResolveVerifyToken(ctx context.Context, cfg *config.Config, open func(context.Context) (SecretGetter, error), log zerolog.Logger) string {
	if cfg.VerifyToken != "" {
		return cfg.VerifyToken
	}
	if cfg.VerifyTokenSecretID == "" {
		log.Warn().Msg("VERIFY_TOKEN is not set; webhook verification will always fail")
		return ""
	}
	store, err := open(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("secret store not available; webhook verification will always fail")
		return ""
	}
	token, err := store.GetString(ctx, cfg.VerifyTokenSecretID)
	if err != nil {
		log.Warn().Err(err).Str("secret_id", cfg.VerifyTokenSecretID).Msg("could not read verify token")
		return ""
	}
	log.Info().Str("secret_id", cfg.VerifyTokenSecretID).Msg("verify token loaded from secret store")
	return token
}
