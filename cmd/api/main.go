package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "cotador_telecom/docs"
	"cotador_telecom/internal/adapter/http/routes"
	"cotador_telecom/internal/infrastructure/config"
	"cotador_telecom/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Cotador Telecom API
// @version         1.0
// @description     Quoting, proposals and negotiation for telecom and IT services.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("failed to run the application")
		stop()
		os.Exit(1)
	}
}
