package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"birdeye-relay/pkg/api"
	"birdeye-relay/pkg/clients/birdeye"
	"birdeye-relay/pkg/config"
	"birdeye-relay/pkg/logger"
	"birdeye-relay/pkg/metrics"
	"birdeye-relay/pkg/services"
)

func main() {
	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		bootLog.Warn().Err(err).Msg("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("Could not load configuration")
	}

	log, err := logger.New(cfg.LogLevel, !cfg.IsProduction())
	if err != nil {
		bootLog.Fatal().Err(err).Msg("Could not initialize logger")
	}

	if cfg.Birdeye.APIKey == "" {
		log.Warn().Msg("BIRDEYE_API_KEY is not set; submissions will be rejected")
	}
	if len(cfg.Birdeye.Locations) > 0 {
		log.Info().Strs("locations", cfg.Birdeye.LocationLabels()).Msg("Multi-location mode")
	} else if cfg.Birdeye.BusinessID == "" {
		log.Warn().Msg("No Birdeye business ID configured; submissions will be rejected")
	}

	registry := metrics.NewRegistry()
	recorder := metrics.New(registry)

	// Initialize API clients
	birdeyeClient := birdeye.NewClient(
		cfg.Birdeye.APIKey,
		cfg.Birdeye.BaseURL,
		&http.Client{Timeout: cfg.Birdeye.Timeout},
		log,
	)

	// Initialize services
	contactService := services.NewContactService(birdeyeClient, cfg.Birdeye, recorder, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	handlers := api.NewHandlers(contactService, recorder, log)
	router := api.NewRouter(handlers, cfg.AllowedOrigin, metrics.Handler(registry), log)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Error starting server")
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
		_ = srv.Close()
	}
}
