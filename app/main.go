package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frontend-hunter/opp-comb/app/api"
	"github.com/frontend-hunter/opp-comb/app/cache"
	"github.com/frontend-hunter/opp-comb/app/cfg"
	"github.com/frontend-hunter/opp-comb/app/fetch"
	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Opp Comb server", "version", appCfg.Version)

	rules, err := listing.LoadRules(appCfg.RulesFile)
	if err != nil {
		slog.Error("Failed to load classification rules", "file", appCfg.RulesFile, "error", err)
		os.Exit(1)
	}

	catalog := source.NewCatalog(appCfg.SourcesDir)
	if err := catalog.Run(); err != nil {
		slog.Error("Failed to load source catalog", "dir", appCfg.SourcesDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Source catalog loaded", "sources", catalog.Count())

	store, err := newStore(appCfg)
	if err != nil {
		slog.Error("Failed to initialize cache store", "backend", appCfg.CacheBackend, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Cache store initialized", "backend", appCfg.CacheBackend, "ttl_seconds", appCfg.CacheTTL)

	ttl := time.Duration(appCfg.CacheTTL) * time.Second

	baselineClient := fetch.NewBaselineClient(time.Duration(appCfg.BaselineTimeout)*time.Second, appCfg.UserAgent)
	enhancedClient := fetch.NewEnhancedClient(time.Duration(appCfg.EnhancedTimeout)*time.Second, appCfg.FetchRetries)

	baselineSet := fetch.NewSet(baselineClient, appCfg.ItemCap, rules.SocialPlatforms)
	enhancedSet := fetch.NewSet(enhancedClient, appCfg.ItemCap, rules.SocialPlatforms)

	baseline := fetch.NewOrchestrator(fetch.NewFetcher(baselineSet, store, ttl, "baseline"), appCfg.BaselineGroupSize)
	enhanced := fetch.NewOrchestrator(fetch.NewFetcher(enhancedSet, store, ttl, "enhanced"), appCfg.EnhancedGroupSize)
	service := fetch.NewService(baseline, enhanced)

	if appCfg.WarmInterval > 0 {
		warmer := fetch.NewWarmer(service, catalog, time.Duration(appCfg.WarmInterval)*time.Second)
		warmer.Start()
		defer warmer.Stop()
		slog.Info("Cache warmer started", "interval_seconds", appCfg.WarmInterval)
	}

	classifier := listing.NewClassifier(rules)
	handler := api.NewHandler(catalog, service, classifier)
	server := api.NewServer(handler, appCfg.Version)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func newStore(appCfg *cfg.Cfg) (cache.Store, error) {
	switch appCfg.CacheBackend {
	case "redis":
		return cache.NewRedis(appCfg.RedisAddr)
	case "sqlite":
		return cache.NewSQLite(appCfg.CachePath)
	default:
		return cache.NewMemory(), nil
	}
}
