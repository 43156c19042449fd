package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/mcoot/moonlight21/internal/api"
	"github.com/mcoot/moonlight21/internal/config"
	"github.com/mcoot/moonlight21/internal/factory"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "Path to a TOML config file (env: "+config.EnvConfigPath+")")
	envFile := pflag.String("env-file", ".env", "Env file loaded before reading the environment")
	pflag.Parse()

	// Load configuration from .env, the optional TOML file and the environment
	cfg, err := config.Load(config.Options{
		ConfigPath: *configPath,
		EnvFiles:   []string{*envFile},
	})
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		slog.Error("invalid log level", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(factory.ConfigFrom(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		TableController: app.TableController,
		Hubs:            app.Hubs,
		StorageType:     cfg.Storage.Type,
	})

	// Create server
	server := api.NewServer(router, api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout.Duration,
		WriteTimeout:    cfg.Server.WriteTimeout.Duration,
		ShutdownTimeout: cfg.Server.ShutdownTimeout.Duration,
	}, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Drop hubs nobody is watching any more
	go app.Hubs.RunCleanup(ctx, time.Minute)

	ln, err := net.Listen("tcp", server.Addr())
	if err != nil {
		logger.Error("failed to listen", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server started",
		slog.String("addr", ln.Addr().String()),
		slog.String("storage", cfg.Storage.Type),
	)

	// Open event streams are ended first so Shutdown does not wait on them
	if err := server.Run(ctx, ln, app.Hubs.Close); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
