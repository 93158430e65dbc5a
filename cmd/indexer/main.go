package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/afandyna/ser-Health/internal/adapters/database"
	"github.com/afandyna/ser-Health/internal/adapters/sample"
	"github.com/afandyna/ser-Health/internal/adapters/search"
	"github.com/afandyna/ser-Health/internal/application/services"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/postgres"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/typesense"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	"github.com/afandyna/ser-Health/pkg/config"
	"github.com/afandyna/ser-Health/pkg/retry"
)

func main() {
	var reset bool
	var intervalFlag string
	flag.BoolVar(&reset, "reset", os.Getenv("RESET_TYPESENSE") == "true", "delete existing Typesense collection before reindexing")
	flag.StringVar(&intervalFlag, "interval", "", "repeat interval for reindexing (e.g. 6h, 30m)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger("directory-indexer", cfg.Env, cfg.LogLevel)

	intervalValue := strings.TrimSpace(intervalFlag)
	if intervalValue == "" {
		intervalValue = strings.TrimSpace(os.Getenv("REINDEX_INTERVAL"))
	}

	var interval time.Duration
	if intervalValue != "" {
		interval, err = time.ParseDuration(intervalValue)
		if err != nil {
			log.Fatal().Err(err).Str("interval", intervalValue).Msg("invalid interval")
		}
		if interval <= 0 {
			log.Fatal().Msg("interval must be greater than zero")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := indexOnce(ctx, cfg, reset); err != nil {
			log.Error().Err(err).Msg("reindex failed")
		}

		if interval <= 0 {
			break
		}

		reset = false
		log.Info().Dur("interval", interval).Msg("reindex complete, waiting for next run")

		select {
		case <-ctx.Done():
			log.Info().Msg("reindexer shutting down")
			return
		case <-time.After(interval):
		}
	}
}

func indexOnce(ctx context.Context, cfg *config.Config, reset bool) error {
	tsClient, err := typesense.NewClientWithRetry(&cfg.Typesense, retry.DefaultConfig())
	if err != nil {
		return fmt.Errorf("typesense unavailable: %w", err)
	}
	index := search.NewTypesenseAdapter(tsClient)

	if reset {
		log.Info().Msg("dropping Typesense collection")
		if err := index.DropSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to drop collection")
		}
	}
	if err := index.InitSchema(ctx); err != nil {
		return err
	}

	var src services.VerifiedSource = sample.NewSource()
	if cfg.Database.Enabled {
		pgClient, err := postgres.NewClientWithRetry(&cfg.Database, retry.DefaultConfig())
		if err != nil {
			return fmt.Errorf("postgres unavailable: %w", err)
		}
		defer pgClient.Close()
		src = database.NewListingAdapter(pgClient, nil)
	} else {
		log.Warn().Msg("database disabled, indexing built-in sample listings")
	}

	counts, err := services.SyncIndex(ctx, src, index)
	for kind, n := range counts {
		log.Info().Str("kind", string(kind)).Int("indexed", n).Msg("kind indexed")
	}
	return err
}
