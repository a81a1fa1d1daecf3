package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/ghostgame/internal/config"
	"github.com/mcoot/ghostgame/internal/factory"
	redisstorage "github.com/mcoot/ghostgame/internal/storage/redis"
)

// loadConfig reads application settings and applies CLI overrides
func loadConfig() (*config.Config, error) {
	appCfg, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return nil, err
	}
	if cfg.DictionaryPath != "" {
		appCfg.DictionaryPath = cfg.DictionaryPath
	}
	return appCfg, nil
}

// buildApp wires the application and loads its dictionary. A dictionary
// that cannot be loaded is fatal.
func buildApp(ctx context.Context, appCfg *config.Config, seed *uint64, logger *slog.Logger) (*factory.App, error) {
	factoryCfg := factory.Config{
		DictionaryPath:  appCfg.DictionaryPath,
		Logger:          logger,
		StorageType:     appCfg.StorageType,
		DefaultStrategy: appCfg.DefaultStrategy,
		Seed:            seed,
	}
	if appCfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = appCfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	if err := app.LoadDictionary(ctx); err != nil {
		logger.Error("could not load dictionary",
			slog.String("path", appCfg.DictionaryPath),
			slog.String("error", err.Error()),
		)
		_ = app.Close()
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	return app, nil
}
