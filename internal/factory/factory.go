package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/dependencies/clock"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/dependencies/random"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/bot"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/services/game"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/storage"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/storage/memory"
	redisstorage "github.com/mihailDamchevski/TABLA-BAKI/internal/storage/redis"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/variant"
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
	VariantRegistry *variant.Registry
	GameController  *game.Controller
	BotService      *bot.Service
}

// Config holds configuration for the application factory
type Config struct {
	// VariantsDir overlays extra variant files on top of the built-ins (optional)
	VariantsDir string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
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

	// Load the variant catalogue
	registry, err := variant.NewRegistry(cfg.VariantsDir, logger)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, registry, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, registry *variant.Registry, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	gameController := game.NewController(store, registry, clk, rnd, logger)
	botService := bot.NewService(gameController, bot.DefaultStrategies(rnd), logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		VariantRegistry: registry,
		GameController:  gameController,
		BotService:      botService,
	}
}
