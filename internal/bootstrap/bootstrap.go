package bootstrap

import (
	"context"
	"fmt"
	"time"

	authHandler "agency-server/internal/auth/handler"
	authProcessor "agency-server/internal/auth/processor"
	bonusHandler "agency-server/internal/bonus/handler"
	bonusProcessor "agency-server/internal/bonus/processor"
	"agency-server/internal/clients/redis"
	"agency-server/internal/clients/whatsapp"
	"agency-server/internal/config"
	importHandler "agency-server/internal/creatorimport/handler"
	importProcessor "agency-server/internal/creatorimport/processor"
	"agency-server/internal/observability"
	"agency-server/internal/ratelimit"
	"agency-server/internal/store"
	talentsHandler "agency-server/internal/talents/handler"
	talentsProcessor "agency-server/internal/talents/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Processors, shared with the importer CLI
	ImportProcessor importProcessor.ImportProcessor
	AuthProcessor   authProcessor.AuthProcessor

	// Handlers
	AuthHandler    authHandler.Handler
	ImportHandler  importHandler.Handler
	TalentsHandler talentsHandler.Handler
	BonusHandler   bonusHandler.Handler

	LookupLimiter *ratelimit.Service

	redis *redis.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	nullPolicy, err := importProcessor.ParseNullPolicy(cfg.Import.NullPolicy)
	if err != nil {
		return nil, err
	}
	deps.ImportProcessor = importProcessor.New(&deps.Store, logger, importProcessor.Config{
		NullPolicy:       nullPolicy,
		ErrorSampleLimit: cfg.Import.ErrorSampleLimit,
		NetworkManager:   cfg.Import.NetworkManager,
	})
	deps.ImportHandler = importHandler.New(&deps.ImportProcessor, cfg.Import.MaxUploadBytes, logger)

	bonusProc := bonusProcessor.New(&deps.Store, logger)
	deps.BonusHandler = bonusHandler.New(&bonusProc, logger)

	whatsappClient := whatsapp.NewClient(cfg.Twilio, logger)
	talentsProc := talentsProcessor.New(&deps.Store, &bonusProc, whatsappClient, logger)
	deps.TalentsHandler = talentsHandler.New(&talentsProc, logger)

	deps.AuthProcessor = authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(&deps.AuthProcessor, logger)

	deps.redis, err = redis.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		// lookups run unlimited without Redis
		logger.Error(ctx, "failed to connect to Redis, public lookups are not rate limited", err)
		deps.redis = nil
	}
	deps.LookupLimiter = ratelimit.NewService(limiterWindow(deps.redis), cfg.Redis.LookupsPerMinute, logger)

	return deps, nil
}

// limiterWindow avoids handing the limiter a typed nil
func limiterWindow(c *redis.Client) ratelimit.Window {
	if c == nil {
		return nil
	}
	return c
}

// Ping checks the database within the given timeout
func (d *Dependencies) Ping(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return d.Store.Ping(ctx)
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if err := d.redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close Redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
