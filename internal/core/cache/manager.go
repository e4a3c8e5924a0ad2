package cache

import (
	"context"
	"sync"
	"time"

	"chucklechow/internal/infrastructure/config"
	"chucklechow/internal/pkg/common"

	"go.uber.org/zap"
)

// Manager is the in-memory response cache with TTL expiry and LRU eviction
// when full.
type Manager struct {
	cfg   config.CacheConfig
	mu    sync.RWMutex
	store map[string]entry
	stats stats
	stop  chan struct{}
	once  sync.Once
}

type entry struct {
	value       string
	expiresAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type stats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewManager creates the in-memory cache and starts its cleanup goroutine.
func NewManager(cfg config.CacheConfig) *Manager {
	m := &Manager{
		cfg:   cfg,
		store: make(map[string]entry),
		stop:  make(chan struct{}),
	}
	go m.startCleanup()

	common.LogInfo("response cache initialized",
		zap.Int("max_size", cfg.MaxSize),
		zap.Duration("ttl", cfg.TTL),
		zap.Duration("cleanup_interval", cfg.CleanupInterval),
	)
	return m
}

// Get returns the cached value for key, or common.ErrCacheDisabled on a miss
// or expired entry.
func (m *Manager) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.store[key]
	if !ok {
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return "", common.ErrCacheDisabled
	}
	if time.Now().After(e.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return "", common.ErrCacheDisabled
	}

	e.lastAccess = time.Now()
	e.accessCount++
	m.store[key] = e
	m.stats.hits++
	common.LogCacheHit("memory", key)
	return e.value, nil
}

// Set stores value under key. When the cache is full it first drops expired
// entries, then the least recently used one; ErrCacheFull only surfaces if
// even that fails to make room.
func (m *Manager) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.cfg.MaxSize {
		m.cleanupLocked()
		if len(m.store) >= m.cfg.MaxSize {
			m.evictLRULocked()
		}
		if len(m.store) >= m.cfg.MaxSize {
			m.stats.errors++
			common.LogWarn("response cache full",
				zap.Int("size", len(m.store)),
				zap.Int("max_size", m.cfg.MaxSize),
			)
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	m.store[key] = entry{
		value:      value,
		expiresAt:  now.Add(m.cfg.TTL),
		lastAccess: now,
	}
	return nil
}

func (m *Manager) startCleanup() {
	interval := m.cfg.CleanupInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanupLocked()
			m.mu.Unlock()
		case <-m.stop:
			return
		}
	}
}

func (m *Manager) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, e := range m.store {
		if now.After(e.expiresAt) {
			delete(m.store, key)
			m.stats.evictions++
			count++
		}
	}
	if count > 0 {
		common.LogDebug("expired cache entries cleaned",
			zap.Int("count", count),
			zap.Int("remaining", len(m.store)),
		)
	}
	return count
}

func (m *Manager) evictLRULocked() {
	var victim string
	var victimAccess time.Time
	victimCount := -1

	for key, e := range m.store {
		if victimCount == -1 ||
			e.accessCount < victimCount ||
			(e.accessCount == victimCount && e.lastAccess.Before(victimAccess)) {
			victim = key
			victimAccess = e.lastAccess
			victimCount = e.accessCount
		}
	}
	if victim != "" {
		delete(m.store, victim)
		m.stats.evictions++
	}
}

// Stats reports cache counters for the health endpoint.
func (m *Manager) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(m.stats.hits) / float64(total)
	}
	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.cfg.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"errors":    m.stats.errors,
		"hit_ratio": ratio,
	}
}

// Close stops the cleanup goroutine and drops all entries.
func (m *Manager) Close() error {
	m.once.Do(func() { close(m.stop) })

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store = make(map[string]entry)
	common.LogInfo("response cache closed",
		zap.Int64("hits", m.stats.hits),
		zap.Int64("misses", m.stats.misses),
		zap.Int64("evictions", m.stats.evictions),
	)
	return nil
}
