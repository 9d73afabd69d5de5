package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	directoryservice "harvest/contexts/community/directory-service"
	directorypostgres "harvest/contexts/community/directory-service/adapters/postgres"
	directoryports "harvest/contexts/community/directory-service/ports"
	moderationservice "harvest/contexts/community/moderation-service"
	moderationpostgres "harvest/contexts/community/moderation-service/adapters/postgres"
	moderationports "harvest/contexts/community/moderation-service/ports"
	ownershipservice "harvest/contexts/community/ownership-service"
	ownershippostgres "harvest/contexts/community/ownership-service/adapters/postgres"
	ownershipports "harvest/contexts/community/ownership-service/ports"
	accountservice "harvest/contexts/identity/account-service"
	accountpostgres "harvest/contexts/identity/account-service/adapters/postgres"
	"harvest/contexts/identity/account-service/adapters/provider"
	accountports "harvest/contexts/identity/account-service/ports"
	newsletterservice "harvest/contexts/marketing/newsletter-service"
	"harvest/contexts/marketing/newsletter-service/adapters/crm"
	"harvest/internal/platform/config"
	"harvest/internal/platform/db"
	"harvest/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	// The site runs without a database: reads degrade to empty results and
	// writes surface store-unavailable errors.
	var pg *db.Postgres
	var accountRepo accountports.Repository
	var directoryRepo directoryports.Repository
	var moderationRepo moderationports.Repository
	var ownershipRepo ownershipports.Repository

	if cfg.DatabaseDSN != "" {
		pg, err = db.Connect(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		models := append(accountpostgres.Models(), directorypostgres.Models()...)
		if err := pg.Migrate(models...); err != nil {
			_ = pg.Close()
			return nil, err
		}
		accountRepo = accountpostgres.NewRepository(pg.DB, logger)
		directoryRepo = directorypostgres.NewRepository(pg.DB, logger)
		moderationRepo = moderationpostgres.NewRepository(pg.DB, logger)
		ownershipRepo = ownershippostgres.NewRepository(pg.DB, logger)
	} else {
		logger.Warn("database not configured",
			"event", "bootstrap_database_missing",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"effect", "reads degrade to empty results, writes fail",
		)
	}

	verifier, err := provider.NewVerifier(cfg.AuthProviderURL, cfg.AuthJWTPublicKey, logger)
	if err != nil {
		return nil, err
	}

	accounts := accountservice.NewModule(accountservice.Dependencies{
		Verifier:    verifier,
		Repository:  accountRepo,
		Clock:       accountpostgres.SystemClock{},
		Logger:      logger,
		OwnerOpenID: cfg.OwnerOpenID,
	})
	directory := directoryservice.NewModule(directoryservice.Dependencies{
		Repository: directoryRepo,
		Clock:      directorypostgres.SystemClock{},
		Logger:     logger,
	})
	moderation := moderationservice.NewModule(moderationservice.Dependencies{
		Repository: moderationRepo,
		Clock:      moderationpostgres.SystemClock{},
		Logger:     logger,
	})
	ownership := ownershipservice.NewModule(ownershipservice.Dependencies{
		Repository: ownershipRepo,
		Clock:      ownershippostgres.SystemClock{},
		Logger:     logger,
	})
	newsletter := newsletterservice.NewModule(newsletterservice.Dependencies{
		Client: crm.NewClient(crm.Config{
			APIBase:    cfg.GHLAPIBase,
			APIKey:     cfg.GHLAPIKey,
			LocationID: cfg.GHLLocationID,
		}, logger),
		Logger: logger,
	})

	server := httpserver.New(
		accounts,
		directory,
		moderation,
		ownership,
		newsletter,
		httpserver.RegistryConfig{
			Token:         cfg.RegistryFeedToken,
			PublicSiteURL: cfg.PublicSiteURL,
		},
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
