// Package main is the entry point for the GameGrove server.
// It loads configuration, builds the catalog index, connects to the
// optional backing services, sets up routing, and starts the HTTP server
// with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamegrove/internal/cache"
	"gamegrove/internal/catalog"
	"gamegrove/internal/config"
	"gamegrove/internal/database"
	"gamegrove/internal/handlers"
	"gamegrove/internal/render"
	"gamegrove/internal/router"
	"gamegrove/internal/store"
)

func main() {
	// Structured logger — outputs text; level debug in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"recent_limit", cfg.RecentPlayedLimit,
	)

	// Build the in-memory catalog index. The catalog is static for the
	// process lifetime; CATALOG_PATH overrides the embedded data.
	var ix *catalog.Index
	if cfg.CatalogPath != "" {
		ix, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		ix, err = catalog.Load()
	}
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL for sitewide play counters (optional — the
	// site works without it, showing catalog base counts only).
	var playStore *store.PlayCountStore
	if cfg.HasDatabase() {
		var db *sql.DB
		db, err = database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		playStore = store.NewPlayCountStore(db)
	} else {
		slog.Warn("database not configured — play counters disabled")
	}

	// Connect to Valkey for the full-page cache (optional).
	var pageCache *cache.PageCache
	if cfg.HasValkey() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		pageCache = cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

		// The catalog may have changed since the last deploy; cached
		// category pages and the sitemap would be stale.
		pageCache.InvalidateAll(context.Background())
	} else {
		slog.Warn("valkey not configured — page cache disabled")
	}

	// Initialize the HTML template renderer.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// In non-development environments, mark the history cookie as
	// Secure (HTTPS-only).
	publicHandlers := handlers.NewPublic(renderer, ix, playStore, pageCache, handlers.Options{
		BaseURL:       cfg.BaseURL,
		FeaturedLimit: cfg.FeaturedLimit,
		RecentLimit:   cfg.RecentPlayedLimit,
		SecureCookies: !cfg.IsDev(),
	})

	// Set up the Chi router with all middleware and routes.
	r := router.New(publicHandlers)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
