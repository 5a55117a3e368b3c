package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mihailDamchevski/TABLA-BAKI/internal/api"
	"github.com/mihailDamchevski/TABLA-BAKI/internal/factory"
	redisstorage "github.com/mihailDamchevski/TABLA-BAKI/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logLevel, levelErr := parseLogLevel(os.Getenv("LOG_LEVEL"))
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if levelErr != nil {
		logger.Warn("invalid LOG_LEVEL, using info", slog.String("value", os.Getenv("LOG_LEVEL")))
	}

	// Build factory config from environment
	cfg := factory.Config{
		VariantsDir: os.Getenv("VARIANTS_DIR"),
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("variants loaded", slog.Int("count", len(app.VariantRegistry.Names())))

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		GameController:  app.GameController,
		BotService:      app.BotService,
		VariantRegistry: app.VariantRegistry,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", portEnv))
			os.Exit(1)
		}
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

// parseLogLevel converts a LOG_LEVEL string (debug, info, warn, error)
// into a slog.Level, defaulting to info.
func parseLogLevel(raw string) (slog.Level, error) {
	if raw == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, err
	}

	return level, nil
}
