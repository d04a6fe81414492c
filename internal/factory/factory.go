package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/jaiidees/riser-gacha/internal/dependencies/clock"
	"github.com/jaiidees/riser-gacha/internal/dependencies/random"
	"github.com/jaiidees/riser-gacha/internal/services/admin"
	"github.com/jaiidees/riser-gacha/internal/services/assets"
	"github.com/jaiidees/riser-gacha/internal/services/blessing"
	"github.com/jaiidees/riser-gacha/internal/services/gate"
	"github.com/jaiidees/riser-gacha/internal/storage"
	"github.com/jaiidees/riser-gacha/internal/storage/memory"
	redisstorage "github.com/jaiidees/riser-gacha/internal/storage/redis"
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
	Catalog        *assets.Catalog
	Blessing       *blessing.Generator
	GateController *gate.Controller
	AdminService   *admin.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ImageDir is the preferred (watermarked) asset directory
	ImageDir string
	// AssetDir is the fallback asset directory used when ImageDir has
	// no images for a side
	AssetDir string
	// BlessingProvider generates blessing text (optional)
	// If nil, the curated fallback pool is always used
	BlessingProvider blessing.Provider
	// BlessingConfig holds timeout and sampling settings (optional)
	BlessingConfig blessing.Config
	// GateConfig holds play-flow settings (optional)
	GateConfig gate.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
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

	app := newWithDependencies(store, clk, rnd, cfg, logger)

	// Seed the system status so the toggle endpoint always has a
	// record to flip
	if err := store.EnsureSystemStatus(context.Background()); err != nil {
		return nil, err
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	catalog := assets.New(cfg.ImageDir, cfg.AssetDir, rnd, logger)
	blessingGen := blessing.New(cfg.BlessingProvider, rnd, cfg.BlessingConfig, logger)
	gateController := gate.NewController(store, catalog, blessingGen, clk, cfg.GateConfig, logger)
	adminService := admin.New(store, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Catalog:        catalog,
		Blessing:       blessingGen,
		GateController: gateController,
		AdminService:   adminService,
	}
}
