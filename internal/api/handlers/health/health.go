package health

import (
	"net/http"
	"runtime"
	"time"

	"chucklechow/internal/core/catalog"
	"chucklechow/internal/core/nutrition"
	"chucklechow/internal/infrastructure/config"
	"chucklechow/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthResponse is the full health check body.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Catalog   *CatalogStatus         `json:"catalog,omitempty"`
	Queue     *QueueStatus           `json:"queue,omitempty"`
}

// CatalogStatus reports the loaded recipe catalog.
type CatalogStatus struct {
	Records int `json:"records"`
}

// QueueStatus reports the nutrition worker pool.
type QueueStatus struct {
	QueueLength    int   `json:"queue_length"`
	ProcessedCount int64 `json:"processed_count"`
	MaxQueueSize   int   `json:"max_queue_size"`
	Workers        int   `json:"workers"`
}

// Handler serves the health endpoints.
type Handler struct {
	cfg   *config.Config
	store *catalog.Store
	pool  *nutrition.Pool
}

// NewHandler creates the health handler. store and pool may be nil.
func NewHandler(cfg *config.Config, store *catalog.Store, pool *nutrition.Pool) *Handler {
	return &Handler{cfg: cfg, store: store, pool: pool}
}

// HealthCheck reports service status, runtime stats, catalog size and the
// nutrition queue.
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if h.store != nil {
		response.Catalog = &CatalogStatus{Records: h.store.Len()}
	}
	if h.pool != nil {
		response.Queue = &QueueStatus{
			QueueLength:    h.pool.QueueLength(),
			ProcessedCount: h.pool.Processed(),
			MaxQueueSize:   h.cfg.Nutrition.MaxQueueSize,
			Workers:        h.cfg.Nutrition.Workers,
		}
	}

	common.LogDebug("health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck reports ready once the catalog snapshot is in place.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"records": h.store.Len(),
	})
}

// LivenessCheck reports the process is alive.
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
