// Lambda entry point for API Gateway proxy integration.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/whatsapp-orchestrator/internal/application/webhook"
	"github.com/whatsapp-orchestrator/internal/config"
	secretsinfra "github.com/whatsapp-orchestrator/internal/infrastructure/secrets"
	"github.com/whatsapp-orchestrator/internal/pkg/logger"
	lambdatransport "github.com/whatsapp-orchestrator/internal/transport/lambda"
)

func main() {
	cfg := config.Load()
	// Lambda log output is collected by CloudWatch, always as JSON.
	log := logger.New("lambda", cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Warn().Err(err).Msg("configuration has invalid server settings")
	}

	verifyToken := secretsinfra.ResolveVerifyToken(context.Background(), cfg, secretsinfra.Opener(cfg), log)
	svc := webhook.NewService(webhook.Config{VerifyToken: verifyToken}, log)

	lambda.Start(lambdatransport.NewHandler(svc).Handle)
}
