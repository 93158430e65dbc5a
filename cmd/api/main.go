package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/afandyna/ser-Health/internal/adapters/cache"
	"github.com/afandyna/ser-Health/internal/adapters/database"
	"github.com/afandyna/ser-Health/internal/adapters/events"
	"github.com/afandyna/ser-Health/internal/adapters/memory"
	"github.com/afandyna/ser-Health/internal/adapters/providers/geolocation"
	"github.com/afandyna/ser-Health/internal/adapters/sample"
	"github.com/afandyna/ser-Health/internal/adapters/search"
	"github.com/afandyna/ser-Health/internal/api/handlers"
	"github.com/afandyna/ser-Health/internal/api/middleware"
	"github.com/afandyna/ser-Health/internal/api/routes"
	"github.com/afandyna/ser-Health/internal/application/services"
	"github.com/afandyna/ser-Health/internal/graphql"
	"github.com/afandyna/ser-Health/internal/graphql/resolvers"
	"github.com/afandyna/ser-Health/internal/domain/providers"
	"github.com/afandyna/ser-Health/internal/domain/repositories"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/postgres"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/redis"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/typesense"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	"github.com/afandyna/ser-Health/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(sctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Storage: Postgres when enabled, otherwise in-process stores.
	var (
		listingRepo repositories.ListingRepository
		bookingRepo repositories.BookingRepository
		primary     services.VerifiedSource
	)
	if cfg.Database.Enabled {
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		if err := database.Migrate(ctx, pgClient); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		listings := database.NewListingAdapter(pgClient, metrics)
		listingRepo, primary = listings, listings
		bookingRepo = database.NewBookingAdapter(pgClient)
		log.Info().Msg("PostgreSQL client initialized")
	} else {
		listings := memory.NewListingStore()
		listingRepo, primary = listings, listings
		bookingRepo = memory.NewBookingStore()
		log.Warn().Msg("database disabled, registrations and bookings are kept in memory")
	}

	var (
		cacheProvider providers.CacheProvider
		eventBus      providers.EventBus
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Redis client, using in-memory cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient, metrics)
			eventBus = events.NewRedisEventBus(redisClient)
			log.Info().Msg("Redis client initialized")
		}
	}
	if cacheProvider == nil {
		cacheProvider = cache.NewMemoryCache()
		eventBus = events.NewMemoryEventBus()
	}
	defer func() {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("error closing event bus")
		}
	}()

	invalidation := services.NewCacheInvalidationService(cacheProvider, eventBus, middleware.RoutePattern("/api/search"))
	if err := invalidation.Start(); err != nil {
		log.Warn().Err(err).Msg("failed to start cache invalidation service")
	} else {
		defer invalidation.Stop()
	}

	fallback := sample.NewSource()
	sources := make([]services.VerifiedSource, 0, 3)
	var searchIndex repositories.ListingSearchRepository
	if cfg.Typesense.Enabled {
		tsClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Typesense client")
		} else {
			adapter := search.NewTypesenseAdapter(tsClient)
			if err := adapter.InitSchema(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to init Typesense schema")
			}
			searchIndex = adapter
			sources = append(sources, adapter)
			log.Info().Msg("Typesense client initialized")
		}
	}
	sources = append(sources, primary, fallback)
	chain := services.NewFallbackChain(metrics, sources...)
	log.Info().Strs("sources", chain.Sources()).Msg("verified source chain configured")

	var geo interface {
		providers.GeolocationProvider
		providers.NearbyPlacesProvider
	}
	if cfg.Geolocation.Provider == "google" && cfg.Geolocation.APIKey != "" {
		geo = geolocation.NewGoogleGeolocationProviderWithOptions(cfg.Geolocation.APIKey, cacheProvider, geolocation.GoogleOptions{
			NearbyURL: cfg.Geolocation.NearbyURL,
		})
		log.Info().Msg("using Google Maps geolocation provider")
	} else {
		geo = geolocation.NewMockGeolocationProvider()
		log.Warn().Msg("using mock geolocation provider")
	}

	matcher := services.NewGeoMatcher(services.MatcherOptions{
		DedupRadiusKm:      cfg.Matcher.DedupRadiusKm,
		SentinelDistanceKm: cfg.Matcher.SentinelDistanceKm,
		TieThresholdKm:     cfg.Matcher.TieThresholdKm,
	})
	directory := services.NewDirectoryService(chain, fallback, geo, matcher, metrics, services.DirectoryOptions{
		NearbyRadiusMeters:  cfg.Matcher.NearbyRadiusMeters,
		EmergencyPriorityKm: cfg.Matcher.EmergencyPriorityKm,
		MergeFallback:       cfg.Matcher.MergeSampleData,
	})
	origins := services.NewOriginResolver(geo)
	registry := services.NewRegistryService(listingRepo, searchIndex).WithEvents(eventBus)
	bookings := services.NewBookingService(bookingRepo)

	router := routes.NewRouter(
		handlers.NewDirectoryHandler(directory, origins),
		handlers.NewNearbyHospitalsHandler(geo, cfg.Matcher.ProxyRadiusMeters),
		handlers.NewGeolocationHandler(geo, geolocation.Cities),
		handlers.NewRegistryHandler(registry),
		handlers.NewBookingHandler(bookings),
		middleware.NewCacheMiddleware(cacheProvider),
		cfg.Server.AllowedOrigins,
		metrics,
	)
	if cfg.Server.GraphQLEnabled {
		gqlHandler, err := graphql.NewHandler(resolvers.NewResolver(directory, registry, bookings), listingRepo)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build graphql handler")
		}
		router.WithGraphQL(gqlHandler)
		log.Info().Msg("graphql endpoint enabled at /graphql")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
	log.Info().Msg("server stopped")
}
