package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaiidees/riser-gacha/internal/api"
	"github.com/jaiidees/riser-gacha/internal/config"
	"github.com/jaiidees/riser-gacha/internal/factory"
	"github.com/jaiidees/riser-gacha/internal/gemini"
	"github.com/jaiidees/riser-gacha/internal/keepalive"
	"github.com/jaiidees/riser-gacha/internal/services/blessing"
	redisstorage "github.com/jaiidees/riser-gacha/internal/storage/redis"
	"github.com/jaiidees/riser-gacha/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config from environment
	factoryCfg := factory.Config{
		StorageType: cfg.StorageType,
		ImageDir:    cfg.ImageDir,
		AssetDir:    cfg.AssetDir,
		Logger:      logger,
	}

	// Configure Redis if storage type is redis
	if factoryCfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Wire the generative provider; without a key the curated fallback
	// pool carries every play
	if cfg.GeminiAPIKey != "" {
		provider, err := gemini.New(gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.ModelName,
		})
		if err != nil {
			logger.Error("failed to create gemini client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		factoryCfg.BlessingProvider = provider
	} else {
		logger.Warn("GEMINI_API_KEY not set, blessings will use the fallback pool")
	}
	factoryCfg.BlessingConfig = blessing.DefaultConfig()

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Clock:          app.Clock,
		GateController: app.GateController,
		AdminService:   app.AdminService,
		Catalog:        app.Catalog,
		AdminSecret:    cfg.AdminSecret,
	})

	// Serve the frontend bundle for everything outside /api
	spa := web.NewSPAHandler(cfg.StaticDir)

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/health", apiRouter)
	mux.Handle("/", spa)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Periodic self-ping keeps free-tier hosting from idling the instance
	if cfg.SelfURL != "" {
		pingCfg := keepalive.DefaultConfig()
		pingCfg.SelfURL = cfg.SelfURL
		go keepalive.New(pingCfg, logger).Run(ctx)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
