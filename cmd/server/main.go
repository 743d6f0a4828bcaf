// Gethomepage Tautulli User Custom API - User Status Proxy for Tautulli
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api

// Package main is the entry point for the Gethomepage Tautulli user API.
//
// The server sits between a Gethomepage dashboard and Tautulli. It fetches the
// users table and current activity, merges live sessions into each user, and
// renders user-defined format fields such as
//
//	Seen [ ${last_seen_formatted} ] Watching ( ${last_played} )
//
// into every record before answering in Tautulli's own response envelope.
//
// # Startup
//
//  1. .env is loaded if present (existing environment variables win)
//  2. Configuration: defaults, config.yaml, environment (Koanf v2)
//  3. Logging: zerolog, json or console
//  4. Tautulli client behind a circuit breaker
//  5. Format settings store (file or badger) with a read cache
//  6. Supervisor tree: connectivity probe and HTTP server
//
// # Configuration
//
// The minimum is the Tautulli location and API key:
//
//	export TAUTULLI_BASE_URL=http://tautulli:8181
//	export TAUTULLI_API_KEY=your-api-key
//	./server
//
// USER_API_PORT (default 3009), NODE_ENV, SETTINGS_STORE, CORS_ORIGINS and
// the rest are listed in internal/config.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight requests for up to 10s, then the settings store is closed.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/api"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/config"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/logging"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/settings"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/status"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/supervisor"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/supervisor/services"
	"github.com/10mfox/Gethomepage-Tautulli-User-Custom-Api/internal/upstream"
)

// endpoints is the startup banner route list.
var endpoints = []logging.Endpoint{
	{Method: http.MethodGet, Path: "/api/users", Description: "List all users with sorting and filtering"},
	{Method: http.MethodGet, Path: "/api/users/{userId}", Description: "Get specific user details"},
	{Method: http.MethodGet, Path: "/api/format-settings", Description: "Get current format settings"},
	{Method: http.MethodPost, Path: "/api/format-settings", Description: "Update format settings"},
	{Method: http.MethodPost, Path: "/api/format-settings/preview", Description: "Preview format settings against a sample user"},
	{Method: http.MethodGet, Path: "/health", Description: "Service and Tautulli health"},
	{Method: http.MethodGet, Path: "/metrics", Description: "Prometheus metrics"},
}

func main() {
	// A missing .env is normal; variables may come from the container.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("tautulli_url", cfg.Tautulli.URL).
		Str("environment", cfg.Server.Environment).
		Str("settings_store", cfg.Settings.Store).
		Bool("live_sessions", cfg.Tautulli.LiveSessions).
		Msg("Configuration loaded")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := upstream.NewCircuitBreakerClient(&cfg.Tautulli)
	aggregator := status.NewAggregator(client, status.Options{
		LiveSessions: cfg.Tautulli.LiveSessions,
		WatchStats:   cfg.Tautulli.WatchStats,
	})

	store, err := settings.NewStore(&cfg.Settings)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing settings store")
		}
	}()

	probe := upstream.NewProbeState()
	handler := api.NewHandler(aggregator, store, api.HandlerOptions{
		Probe:     probe,
		Breaker:   client,
		StaticDir: cfg.Server.StaticDir,
	})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	server := services.NewHTTPServer(&cfg.Server, router.SetupChi())

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddUpstreamService(services.NewProbeService(probe, client, cfg.Tautulli.ProbeInterval, cfg.Tautulli.Timeout))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	logging.LogServerStart(logging.ServerInfo{
		Addr:          server.Addr,
		BaseURL:       fmt.Sprintf("http://localhost:%d", cfg.Server.Port),
		Environment:   cfg.Server.Environment,
		TautulliURL:   cfg.Tautulli.URL,
		LiveSessions:  cfg.Tautulli.LiveSessions,
		SettingsStore: cfg.Settings.Store,
		Endpoints:     endpoints,
	})

	errCh := tree.ServeBackground(ctx)

	// The channel carries exactly one value and is never closed.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish")
		err = <-errCh
	case err = <-errCh:
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
