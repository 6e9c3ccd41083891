package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/adapters/cache"
	catalogadapter "github.com/ankorline/yachtcharterdiscovery/backend/internal/adapters/catalog"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/api/handlers"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/api/middleware"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/api/routes"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/application/services"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/providers"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/repositories"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/infrastructure/clients/catalogapi"
	redisclient "github.com/ankorline/yachtcharterdiscovery/backend/internal/infrastructure/clients/redis"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/infrastructure/clients/unsplash"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/infrastructure/observability"
	"github.com/ankorline/yachtcharterdiscovery/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize Redis client; the catalog works uncached without it
	var cacheProvider providers.CacheProvider
	redisClient, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("Redis client initialized")
	}

	// Initialize services
	flags := services.NewFeatureFlags(cfg.Features)

	unsplashClient := unsplash.NewClient(
		cfg.Unsplash.SearchURL,
		time.Duration(cfg.Unsplash.TimeoutSeconds)*time.Second,
	)
	imageService := services.NewImageService(unsplashClient, flags, metrics)

	catalogClient := catalogapi.NewClient(
		cfg.Catalog.URL,
		time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
	)
	catalogService := services.NewCatalogService(catalogClient, imageService, metrics)

	// Wrap the loader with caching when Redis is available
	var yachtRepo repositories.YachtRepository = catalogService
	if cacheProvider != nil {
		yachtRepo = catalogadapter.NewCachedCatalogAdapter(
			catalogService,
			cacheProvider,
			cfg.Catalog.CacheTTLSeconds,
			metrics,
		)
		log.Info().Msg("catalog loader wrapped with caching layer")
	} else {
		log.Warn().Msg("catalog loader running without cache")
	}

	engine := services.NewQueryEngine()

	// Initialize handlers and middleware
	yachtHandler := handlers.NewYachtHandler(yachtRepo, engine)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
	}

	// Set up router
	router := routes.NewRouter(yachtHandler, cacheMiddleware, metrics)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := cfg.Server.ServerAddr()
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
