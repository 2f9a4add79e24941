package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"product-search/internal/config"
	"product-search/internal/database"
	"product-search/internal/publications"
	"product-search/internal/repository"
	"product-search/internal/routes"
	"product-search/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(2)
	}
	initLogger(cfg)
	gin.SetMode(cfg.GinMode)

	var (
		external services.ExternalCatalog
		local    services.LocalStore
		deps     routes.Dependencies
	)

	if cfg.CatalogURL != "" {
		client, err := publications.NewClient(publications.Options{
			URL:            cfg.CatalogURL,
			Token:          cfg.CatalogToken,
			Timeout:        cfg.CatalogTimeout,
			PageSize:       cfg.CatalogPageSize,
			CacheTTL:       cfg.CatalogCacheTTL,
			ForwardFilters: cfg.CatalogForwardFilters,
		})
		if err != nil {
			slog.Error("invalid catalog configuration", "err", err)
			os.Exit(2)
		}
		defer client.Close()
		external = client
	} else {
		slog.Warn("CATALOG_URL not set, external catalog disabled")
	}

	if cfg.MongoURI != "" {
		client, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			slog.Error("mongo unavailable, running without database", "err", err)
		} else {
			defer func() {
				if err := database.Disconnect(context.Background(), client); err != nil {
					slog.Error("mongo disconnect", "err", err)
				}
			}()
			db := client.Database(cfg.MongoDB)
			local = repository.NewProductRepository(db.Collection(cfg.ProductsCollection))
			searches := repository.NewSearchRepository(
				db.Collection(cfg.SearchesCollection),
				db.Collection(cfg.ClicksCollection),
			)
			deps.Recorder = searches
			deps.Analytics = searches
		}
	} else {
		slog.Warn("MONGO_URI not set, running without database")
	}

	productsService := services.NewProductsService(external, local, slog.Default())
	deps.Search = services.NewSearchService(productsService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("🚀 Server running", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("unexpected server shutdown", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown gracefully", "err", err)
	}
}

func initLogger(cfg *config.Config) {
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
