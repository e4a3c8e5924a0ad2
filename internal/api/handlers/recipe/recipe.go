package recipe

import (
	"encoding/json"
	"fmt"
	"net/http"

	"chucklechow/internal/core/cache"
	"chucklechow/internal/core/engine"
	"chucklechow/internal/core/taxonomy"
	"chucklechow/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateRequest is the recipe synthesis request body. Preferences values
// are free-typed on the wire (booleans and strings both appear in practice)
// and normalized to strings before hitting the engine.
type GenerateRequest struct {
	Ingredients []string               `json:"ingredients"`
	Preferences map[string]interface{} `json:"preferences"`
}

// Handler serves the recipe synthesis endpoints.
type Handler struct {
	engine *engine.Service
	cache  cache.ResponseCache
}

// NewHandler creates the recipe handler. cache may be nil when caching is
// disabled.
func NewHandler(eng *engine.Service, responseCache cache.ResponseCache) *Handler {
	return &Handler{
		engine: eng,
		cache:  responseCache,
	}
}

// HandleGenerate synthesizes a recipe for the requested ingredients. Identical
// requests within the cache TTL are served from the response cache.
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	common.LogInfo("recipe generation request received",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
	)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid request format",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: ingredients must be a list and preferences must be an object"})
		return
	}

	preferences := normalizePreferences(req.Preferences)
	isRandom := preferences["isRandom"] == "true"
	key := cache.Key(req.Ingredients, isRandom)

	if h.cache != nil {
		if cached, err := h.cache.Get(c.Request.Context(), key); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	recipe := h.engine.Generate(c.Request.Context(), req.Ingredients, preferences)

	payload, err := json.Marshal(recipe)
	if err != nil {
		common.LogError("failed to marshal recipe",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render recipe"})
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), key, string(payload)); err != nil {
			common.LogWarn("failed to cache recipe response",
				zap.Error(err),
				zap.String("request_id", requestID),
			)
		}
	}

	common.LogInfo("recipe generated",
		zap.String("request_id", requestID),
		zap.String("title", recipe.Title),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.Bool("random", isRandom),
	)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// HandleListIngredients returns the known ingredient vocabulary grouped by
// category.
func (h *Handler) HandleListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": taxonomy.Categories(),
	})
}

// normalizePreferences flattens wire values to strings so "isRandom": true
// and "isRandom": "true" behave the same.
func normalizePreferences(prefs map[string]interface{}) map[string]string {
	out := make(map[string]string, len(prefs))
	for key, value := range prefs {
		switch v := value.(type) {
		case string:
			out[key] = v
		case bool:
			out[key] = fmt.Sprintf("%t", v)
		case float64:
			out[key] = fmt.Sprintf("%g", v)
		default:
			// Nested objects and arrays have no preference meaning; skip.
		}
	}
	return out
}
