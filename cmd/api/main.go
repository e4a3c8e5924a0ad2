package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chucklechow/internal/api"
	"chucklechow/internal/core/cache"
	"chucklechow/internal/core/catalog"
	"chucklechow/internal/core/engine"
	"chucklechow/internal/core/nutrition"
	"chucklechow/internal/infrastructure/config"
	"chucklechow/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("starting application",
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.Bool("debug", cfg.App.Debug),
	)

	// Catalog: Postgres when a DSN is configured, built-in seed otherwise.
	// Startup degrades to an empty catalog rather than failing.
	ctx := context.Background()
	var provider catalog.Provider
	if cfg.Catalog.DSN != "" {
		pg, err := catalog.NewPostgresProvider(cfg.Catalog.DSN)
		if err != nil {
			common.LogError("failed to connect to recipe catalog database", zap.Error(err))
			os.Exit(1)
		}
		defer pg.Close()
		provider = pg
	} else {
		common.LogInfo("no catalog DSN configured, using built-in seed recipes")
		provider = catalog.NewSeedProvider()
	}
	store := catalog.Load(ctx, provider)

	// Response cache.
	var responseCache cache.ResponseCache
	if cfg.Cache.Enabled {
		switch cfg.Cache.Backend {
		case "redis":
			redisCache, err := cache.NewRedisCache(cfg.Cache)
			if err != nil {
				common.LogFatal("failed to initialize redis cache", zap.Error(err))
			}
			responseCache = redisCache
		default:
			responseCache = cache.NewManager(cfg.Cache)
		}
		defer responseCache.Close()
	}

	// Nutrition pool, with a remote lookup client when configured.
	var client *nutrition.Client
	if cfg.Nutrition.RemoteURL != "" {
		client = nutrition.NewClient(cfg.Nutrition.RemoteURL)
	}
	pool := nutrition.NewPool(cfg.Nutrition, client)
	defer pool.Close()

	eng := engine.NewService(store, pool, engine.NewLockedRand(), cfg.Engine.TopK, cfg.Engine.ChaosFactor)

	router := api.SetupRouter(cfg, api.Dependencies{
		Store:         store,
		Pool:          pool,
		Engine:        eng,
		ResponseCache: responseCache,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("server listening",
			zap.Int("port", cfg.Server.Port),
			zap.Int("catalog_records", store.Len()),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
