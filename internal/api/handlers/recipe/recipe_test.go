package recipe

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chucklechow/internal/core/cache"
	"chucklechow/internal/core/catalog"
	"chucklechow/internal/core/engine"
	"chucklechow/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(responseCache cache.ResponseCache) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := catalog.NewStore([]catalog.Record{
		{ID: 1, Title: "Bubba's Chicken and Rice", Ingredients: []string{"chicken", "rice", "lemon", "butter"},
			Steps: []string{"Cook the rice.", "Cook the chicken.", "Serve."}, CookingTime: 35, Difficulty: "easy", Servings: 2, Tips: "Tips!"},
	})
	eng := engine.NewService(store, nil, engine.NewRand(42), 5, 7)
	handler := NewHandler(eng, responseCache)

	router := gin.New()
	router.POST("/api/v1/recipe/generate", handler.HandleGenerate)
	router.GET("/api/v1/ingredients", handler.HandleListIngredients)
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipe/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleGenerate(t *testing.T) {
	router := newTestRouter(nil)

	w := postJSON(router, `{"ingredients": ["chicken", "rice"], "preferences": {}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["title"])
	assert.NotEmpty(t, resp["steps"])
	assert.NotEmpty(t, resp["ingredients"])

	nutrition, ok := resp["nutrition"].(map[string]interface{})
	require.True(t, ok)
	assert.Greater(t, nutrition["calories"].(float64), 0.0)
}

func TestHandleGenerateEmptyIngredients(t *testing.T) {
	router := newTestRouter(nil)

	w := postJSON(router, `{"ingredients": [], "preferences": {}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No Ingredients", resp["title"])

	nutrition, ok := resp["nutrition"].(map[string]interface{})
	require.True(t, ok)
	assert.Zero(t, nutrition["calories"].(float64))
}

func TestHandleGenerateInvalidShape(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		name string
		body string
	}{
		{"ingredients not a list", `{"ingredients": "chicken", "preferences": {}}`},
		{"preferences not an object", `{"ingredients": ["chicken"], "preferences": "nope"}`},
		{"not json", `yeehaw`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandleGenerateBooleanPreference(t *testing.T) {
	router := newTestRouter(nil)

	// isRandom arrives as a JSON boolean and still triggers the random path.
	w := postJSON(router, `{"ingredients": ["chicken"], "preferences": {"isRandom": true}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["title"])
}

func TestHandleGenerateCaching(t *testing.T) {
	responseCache := cache.NewManager(config.CacheConfig{
		Enabled:         true,
		Backend:         "memory",
		MaxSize:         10,
		TTL:             time.Minute,
		CleanupInterval: time.Minute,
	})
	defer responseCache.Close()
	router := newTestRouter(responseCache)

	// Random enrichment means two generations rarely agree; a cache hit must.
	first := postJSON(router, `{"ingredients": ["squirrel", "okra"], "preferences": {}}`)
	require.Equal(t, http.StatusOK, first.Code)

	second := postJSON(router, `{"ingredients": ["squirrel", "okra"], "preferences": {}}`)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	// Ingredient order does not bust the cache.
	third := postJSON(router, `{"ingredients": ["okra", "squirrel"], "preferences": {}}`)
	require.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, first.Body.String(), third.Body.String())
}

func TestHandleListIngredients(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ingredients", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories map[string][]string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Categories, "meat")
	assert.Contains(t, resp.Categories["meat"], "chicken")
}

func TestNormalizePreferences(t *testing.T) {
	got := normalizePreferences(map[string]interface{}{
		"diet":     "vegan",
		"isRandom": true,
		"servings": 2.0,
		"nested":   map[string]interface{}{"ignored": true},
	})
	assert.Equal(t, "vegan", got["diet"])
	assert.Equal(t, "true", got["isRandom"])
	assert.Equal(t, "2", got["servings"])
	assert.NotContains(t, got, "nested")
}
