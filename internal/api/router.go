package api

import (
	"context"
	"net/http"
	"time"

	"chucklechow/internal/api/handlers/health"
	recipeHandler "chucklechow/internal/api/handlers/recipe"
	"chucklechow/internal/api/middleware"
	"chucklechow/internal/core/cache"
	"chucklechow/internal/core/catalog"
	"chucklechow/internal/core/engine"
	"chucklechow/internal/core/nutrition"
	"chucklechow/internal/infrastructure/config"
	"chucklechow/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// Per-request deadline.
	timeoutDuration = 30 * time.Second
	// Request body limit (1MB); recipe requests are small JSON.
	maxBodySize = 1 << 20
)

// Dependencies carries the constructed services the router wires into
// handlers.
type Dependencies struct {
	Store         *catalog.Store
	Pool          *nutrition.Pool
	Engine        *engine.Service
	ResponseCache cache.ResponseCache
}

// SetupRouter builds the gin engine with the full middleware chain and all
// routes.
func SetupRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// Per-request timeout.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			common.LogError("request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
		}
	})

	healthHandler := health.NewHandler(cfg, deps.Store, deps.Pool)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	router.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
			"message": "Welcome to the kitchen of chaos. POST your ingredients and brace yourself.",
			"endpoints": gin.H{
				"generate":    "POST /api/v1/recipe/generate",
				"ingredients": "GET /api/v1/ingredients",
			},
		})
	})

	apiGroup := router.Group("/api/v1")
	{
		handler := recipeHandler.NewHandler(deps.Engine, deps.ResponseCache)

		apiGroup.GET("/ingredients", handler.HandleListIngredients)

		recipeGroup := apiGroup.Group("/recipe")
		{
			recipeGroup.POST("/generate", handler.HandleGenerate)
		}
	}

	common.LogInfo("router setup completed",
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Bool("cache_enabled", deps.ResponseCache != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router
}
