// ABOUTME: Main entry point for the Newsboard API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"newsboard-api/api"
	"newsboard-api/api/handlers"
	"newsboard-api/core/category"
	"newsboard-api/core/feed"
	"newsboard-api/core/interfaces"
	"newsboard-api/core/listengine"
	"newsboard-api/core/session"
	"newsboard-api/core/workers"
	"newsboard-api/infrastructure/cache"
	"newsboard-api/infrastructure/cache/memory"
	stdhttp "newsboard-api/infrastructure/http/standard"
	logruslogger "newsboard-api/infrastructure/logger/logrus"
	"newsboard-api/pkg/config"
	"newsboard-api/pkg/featureflags"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("newsboard-api: %v", err)
	}
}

// run owns every resource so deferred cleanup happens before the process exits
func run() error {
	// A missing .env is fine; the environment may be set by the host
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring unreadable .env file: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logruslogger.New(logruslogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info("Starting Newsboard API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"store_type":    cfg.Store.Type,
		"feed_url":      cfg.Feed.URL,
		"refresh_timer": cfg.Server.RefreshTimer,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := cache.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Error("Failed to open store, falling back to memory", map[string]interface{}{
			"store_type": cfg.Store.Type,
			"error":      err.Error(),
		})
		store, closeStore = memory.NewMemoryStore(), func() error { return nil }
	}
	defer closeStore()

	listCfg, err := buildListConfig(cfg.List)
	if err != nil {
		return fmt.Errorf("invalid list configuration: %w", err)
	}

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx = featureflags.WithManager(ctx, flags)

	deps := interfaces.Dependencies{
		Store:      store,
		HTTPClient: stdhttp.NewStandardHTTPClient(30 * time.Second),
		Logger:     logger,
	}
	feedService := feed.NewFeedService(deps, cfg.Feed.URL, time.Duration(cfg.Feed.CacheTTL)*time.Second)

	registry := session.NewRegistry(listCfg, store, logger, time.Duration(cfg.Server.SessionTTL)*time.Second)

	refresher := workers.NewFeedRefresher(feedService, registry, logger, workers.RefresherConfig{
		Interval: time.Duration(cfg.Server.RefreshTimer) * time.Second,
	})
	if err := refresher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start feed refresher: %w", err)
	}
	defer refresher.Stop()

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		Flags:      flags,
		RateLimit:  cfg.Server.RateLimit,
		TrustProxy: cfg.Server.TrustProxy,
	})

	handlers.NewHealthHandler(registry, store, logger).RegisterRoutes(humaAPI)
	handlers.NewCategoryHandler(listCfg.Categories).RegisterRoutes(humaAPI)
	handlers.NewSessionHandler(registry).RegisterRoutes(humaAPI)
	handlers.NewNewsHandler(registry, listCfg.Categories).RegisterRoutes(humaAPI)
	handlers.NewFavoritesHandler(registry).RegisterRoutes(humaAPI)
	handlers.NewArchiveHandler(registry).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)

	select {
	case err := <-serveErr:
		return fmt.Errorf("HTTP server: %w", err)
	default:
		return nil
	}
}

// buildListConfig turns the list settings into an engine configuration
func buildListConfig(lc config.ListConfig) (listengine.Config, error) {
	loc, err := lc.Location()
	if err != nil {
		return listengine.Config{}, err
	}

	table := category.DefaultTable()
	if lc.CategoriesFile != "" {
		table, err = category.LoadTable(lc.CategoriesFile)
		if err != nil {
			return listengine.Config{}, err
		}
	}

	return listengine.Config{
		PageSize:   lc.PageSize,
		MaxVisible: lc.MaxVisible,
		Location:   loc,
		Categories: table,
	}, nil
}
