// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

// Package main is the entry point for the Trendaryo personalization
// server.
//
// The server owns the storefront's personalization state: preference
// settings, the browsing history ledger, and recommendation resolution
// over the product catalog.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered loading via Koanf v2 (defaults, YAML, env)
//  2. Store: BadgerDB persistence (or in-memory for ephemeral runs)
//  3. Personalization service: settings and ledger over the store
//  4. Catalog: static seed or remote HTTP source behind a circuit breaker
//  5. Recommendation engine: deterministic resolver with stale fallback
//  6. HTTP server: REST API under /api/v1, supervised by suture
//
// # Configuration
//
// Configuration is loaded with layered sources (highest priority wins):
//   - Environment variables (HTTP_PORT, STORE_PATH, CATALOG_URL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM.
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

	"github.com/trendaryo/trendaryo/internal/api"
	"github.com/trendaryo/trendaryo/internal/catalog"
	"github.com/trendaryo/trendaryo/internal/config"
	"github.com/trendaryo/trendaryo/internal/logging"
	"github.com/trendaryo/trendaryo/internal/personalization"
	"github.com/trendaryo/trendaryo/internal/recommend"
	"github.com/trendaryo/trendaryo/internal/store"
	"github.com/trendaryo/trendaryo/internal/supervisor"
	"github.com/trendaryo/trendaryo/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("store_backend", cfg.Store.Backend).
		Str("catalog_source", cfg.Catalog.Source).
		Msg("Configuration loaded")

	// Persistence layer.
	var kv store.KV
	switch cfg.Store.Backend {
	case "badger":
		badgerStore, err := store.OpenBadger(cfg.Store.Path)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open store")
		}
		defer func() {
			if err := badgerStore.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing store")
			}
		}()
		kv = badgerStore
		logging.Info().Str("path", cfg.Store.Path).Msg("Badger store opened")
	case "memory":
		kv = store.NewMemoryStore()
		logging.Warn().Msg("Using in-memory store; state will not survive restarts")
	}

	svc := personalization.NewService(kv)

	// Catalog source. The remote source sits behind a circuit breaker;
	// the static seed never fails.
	var provider catalog.Provider
	switch cfg.Catalog.Source {
	case "remote":
		provider = catalog.NewRemoteCatalog(catalog.RemoteConfig{
			BaseURL: cfg.Catalog.URL,
			Timeout: cfg.Catalog.Timeout,
			APIKey:  cfg.Catalog.APIKey,
		})
		logging.Info().Str("url", cfg.Catalog.URL).Msg("Remote catalog configured")
	default:
		provider = catalog.NewStaticCatalog()
	}

	var engine recommend.Engine = recommend.NewResolver(provider)
	if cfg.Catalog.Source == "remote" {
		// Only a remote catalog can fail at resolve time.
		engine = recommend.NewFallbackEngine(engine)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(svc, provider, engine, kv)
	mw := api.NewChiMiddlewareFromConfig(
		cfg.API.CORSOrigins,
		cfg.API.RateLimitReqs,
		cfg.API.RateLimitWindow,
		cfg.API.RateLimitDisabled,
	)
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
