package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/whatsapp-orchestrator/internal/application/webhook"
	"github.com/whatsapp-orchestrator/internal/config"
	secretsinfra "github.com/whatsapp-orchestrator/internal/infrastructure/secrets"
	"github.com/whatsapp-orchestrator/internal/pkg/logger"
	transporthttp "github.com/whatsapp-orchestrator/internal/transport/http"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("No .env file found, reading from environment")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// The verify token is resolved once; changing it requires a restart.
	ctx := context.Background()
	verifyToken := secretsinfra.ResolveVerifyToken(ctx, cfg, secretsinfra.Opener(cfg), log)

	deps := &transporthttp.Deps{
		Logger:     log,
		WebhookSvc: webhook.NewService(webhook.Config{VerifyToken: verifyToken}, log),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.AppPort).Str("env", cfg.AppEnv).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
