package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/moonlight21/internal/api/events"
	"github.com/mcoot/moonlight21/internal/config"
	"github.com/mcoot/moonlight21/internal/dependencies/clock"
	"github.com/mcoot/moonlight21/internal/dependencies/random"
	"github.com/mcoot/moonlight21/internal/services/deck"
	"github.com/mcoot/moonlight21/internal/services/table"
	"github.com/mcoot/moonlight21/internal/storage"
	"github.com/mcoot/moonlight21/internal/storage/memory"
	redisstorage "github.com/mcoot/moonlight21/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = config.StorageTypeMemory
	StorageTypeRedis  = config.StorageTypeRedis
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Decks  deck.Source

	// Services
	TableController *table.Controller

	// Event streams
	Hubs *events.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ShuffleSeed makes deck shuffles reproducible (optional)
	// If nil, decks are shuffled with crypto/rand
	ShuffleSeed *uint64
}

// ConfigFrom builds the factory config from the loaded server configuration
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	fc := Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
		ShuffleSeed: cfg.Game.ShuffleSeed,
	}
	if cfg.Storage.Type == StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.TableTTL = cfg.Storage.TableTTL.Duration
		fc.RedisConfig = &redisCfg
	}
	return fc
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
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Shuffles use their own source so a seed only fixes the card order
	var shuffleRnd random.Random = rnd
	if cfg.ShuffleSeed != nil {
		shuffleRnd = random.NewSeeded(*cfg.ShuffleSeed)
		logger.Warn("deck shuffles are seeded and reproducible")
	}

	return newWithDependencies(store, deck.New(shuffleRnd), clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, decks deck.Source, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	tableController := table.NewController(store, decks, clk, rnd, logger)

	hubs := events.NewHubManager(logger)
	tableController.SetObserver(events.NewBroadcaster(hubs, logger))

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Decks:           decks,
		TableController: tableController,
		Hubs:            hubs,
	}
}

// Close disconnects event streams and releases storage connections
func (a *App) Close() error {
	a.Hubs.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
