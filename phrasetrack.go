// Package phrasetrack wires configuration, logging and a storage backend
// into a ready-to-use learning progress engine. Embedders that want to
// assemble the pieces themselves can use the internal packages' exported
// surfaces through service.NewEngine directly.
package phrasetrack

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahana-dev/phrasetrack/internal/config"
	"github.com/sahana-dev/phrasetrack/internal/domain/srs"
	"github.com/sahana-dev/phrasetrack/internal/platform/logger"
	"github.com/sahana-dev/phrasetrack/internal/platform/postgres"
	"github.com/sahana-dev/phrasetrack/internal/platform/sqlite"
	"github.com/sahana-dev/phrasetrack/internal/service"
	"github.com/sahana-dev/phrasetrack/internal/store"
)

// Open loads configuration from the environment (and an optional
// phrasetrack.yaml), sets up logging, opens the configured storage backend
// and constructs the engine. The caller owns the returned engine and must
// Close it.
func Open(ctx context.Context) (*service.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return OpenWithConfig(ctx, cfg)
}

// OpenWithConfig is Open with an explicit configuration.
func OpenWithConfig(ctx context.Context, cfg *config.Config) (*service.Engine, error) {
	log := logger.Setup(cfg.Logging)

	gw, err := openGateway(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	engine, err := service.NewEngine(ctx, gw, log, engineOptions(cfg.Engine)...)
	if err != nil {
		gw.Close()
		return nil, err
	}
	return engine, nil
}

// openGateway selects the storage backend named by the configuration.
func openGateway(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (store.Gateway, error) {
	switch cfg.Driver {
	case "sqlite":
		gw, err := sqlite.Open(cfg.Path, log)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return gw, nil
	case "postgres":
		gw, err := postgres.Open(ctx, cfg.URL, log)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres storage: %w", err)
		}
		return gw, nil
	case "memory":
		return store.NewMemoryGateway(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// engineOptions maps engine configuration to engine options. Zero-valued
// SRS overrides keep the SM-2 defaults.
func engineOptions(cfg config.EngineConfig) []service.Option {
	opts := []service.Option{
		service.WithDefaultDailyGoal(cfg.DailyGoal),
	}

	if cfg.PassThreshold > 0 || cfg.FirstInterval > 0 || cfg.SecondInterval > 0 || cfg.MinEaseFactor > 0 {
		opts = append(opts, service.WithSRSParams(srs.NewParams(srs.ParamsConfig{
			PassThreshold:  cfg.PassThreshold,
			FirstInterval:  cfg.FirstInterval,
			SecondInterval: cfg.SecondInterval,
			MinEaseFactor:  cfg.MinEaseFactor,
		})))
	}

	return opts
}
