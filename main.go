package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"medapp-server/internal/auth"
	"medapp-server/internal/config"
	"medapp-server/internal/logger"
	"medapp-server/internal/metrics"
	"medapp-server/internal/models"
	"medapp-server/internal/routes"
	"medapp-server/internal/storage"
	"medapp-server/internal/store"
)

func main() {
	// A .env file is optional; the environment wins over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(logger.Config{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment()})
	if cfg.GeneratedSecret {
		log.Warn().Msg("JWT_SECRET not set; using a random signing key, tokens will not survive a restart")
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := models.InitDB(models.DatabaseConfig{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating token service")
	}
	credentials, err := store.NewCredentialStore(db, hasher)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating credential store")
	}

	var objects storage.ObjectStore
	if cfg.Minio.Enabled() {
		objects, err = storage.NewMinioStorage(ctx, cfg.Minio)
		if err != nil {
			log.Fatal().Err(err).Msg("Error connecting to object storage")
		}
		log.Info().Str("endpoint", cfg.Minio.Endpoint).Str("bucket", cfg.Minio.Bucket).Msg("Photo uploads enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.NewRouter(cfg.Origin, routes.Services{
		Credentials: credentials,
		Records:     store.NewRecordStore(db),
		Tokens:      tokens,
		Resolver:    auth.NewResolver(tokens, credentials),
		Objects:     objects,
		Metrics:     metrics.NewMetrics(registry, "medapp"),
		Gatherer:    registry,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.Database.Driver).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
