package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/ghostgame/internal/dependencies/clock"
	"github.com/mcoot/ghostgame/internal/dependencies/random"
	"github.com/mcoot/ghostgame/internal/services/bot"
	"github.com/mcoot/ghostgame/internal/services/dictionary"
	"github.com/mcoot/ghostgame/internal/services/match"
	"github.com/mcoot/ghostgame/internal/storage"
	"github.com/mcoot/ghostgame/internal/storage/memory"
	redisstorage "github.com/mcoot/ghostgame/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	BotService        *bot.Service
	MatchController   *match.Controller

	dictionaryPath string
	closer         io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the dictionary file (optional)
	// If empty, LoadDictionary reads the word list from storage
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// DefaultStrategy is used for matches created without one (optional)
	DefaultStrategy string
	// Seed makes the computer's choices reproducible when set
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closer = redisStore
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", storageType)
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	app := newWithDependencies(store, clk, rnd, logger)
	app.closer = closer
	if cfg.DefaultStrategy != "" {
		if err := app.MatchController.SetDefaultStrategy(cfg.DefaultStrategy); err != nil {
			_ = app.Close()
			return nil, err
		}
	}
	app.dictionaryPath = cfg.DictionaryPath
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(store, logger)
	botService := bot.NewService(bot.NewStrategies(rnd), logger)
	matchController := match.NewController(store, dictService, botService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		BotService:        botService,
		MatchController:   matchController,
	}
}

// LoadDictionary loads the configured dictionary file, or the word list
// previously saved to storage when no file is configured
func (a *App) LoadDictionary(ctx context.Context) error {
	if a.dictionaryPath == "" {
		return a.DictionaryService.LoadFromStorage(ctx)
	}
	return a.DictionaryService.LoadFromFile(ctx, a.dictionaryPath)
}

// Close releases storage connections
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
