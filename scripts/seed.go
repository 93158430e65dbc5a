package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/afandyna/ser-Health/internal/adapters/database"
	"github.com/afandyna/ser-Health/internal/adapters/sample"
	"github.com/afandyna/ser-Health/internal/adapters/search"
	"github.com/afandyna/ser-Health/internal/domain/entities"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/postgres"
	"github.com/afandyna/ser-Health/internal/infrastructure/clients/typesense"
	"github.com/afandyna/ser-Health/internal/infrastructure/observability"
	"github.com/afandyna/ser-Health/pkg/config"
	apperrors "github.com/afandyna/ser-Health/pkg/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("directory-seed", cfg.Env, cfg.LogLevel)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer pgClient.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, pgClient); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE bookings, listings`); err != nil {
			log.Fatal().Err(err).Msg("failed to truncate tables")
		}
	}

	var index *search.TypesenseAdapter
	if cfg.Typesense.Enabled {
		tsClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("typesense unavailable, skipping indexing")
		} else {
			index = search.NewTypesenseAdapter(tsClient)
			if err := index.InitSchema(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to init Typesense schema")
			}
		}
	}

	listings := database.NewListingAdapter(pgClient, nil)
	for _, kind := range entities.AllKinds {
		created, skipped := 0, 0
		for _, l := range sample.Listings(kind) {
			l := l
			if err := listings.Create(ctx, &l); err != nil {
				if apperrors.IsType(err, apperrors.ErrorTypeConflict) {
					skipped++
					continue
				}
				log.Fatal().Err(err).Str("kind", string(kind)).Str("id", l.ID).Msg("failed to seed listing")
			}
			created++
			if index != nil {
				if err := index.Index(ctx, &l); err != nil {
					log.Warn().Err(err).Str("id", l.ID).Msg("failed to index listing")
				}
			}
		}
		log.Info().Str("kind", string(kind)).Int("created", created).Int("skipped", skipped).Msg("seeded")
	}
	log.Info().Msg("seeding complete")
}
