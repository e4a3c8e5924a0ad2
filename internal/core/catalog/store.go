package catalog

import (
	"context"
	"sync/atomic"

	"chucklechow/internal/pkg/common"

	"go.uber.org/zap"
)

// Store holds the current catalog snapshot. Readers get an immutable slice;
// refreshes swap the whole snapshot atomically so a concurrent reader never
// observes a partial update.
type Store struct {
	snapshot atomic.Pointer[[]Record]
}

// NewStore creates a store holding the given records.
func NewStore(records []Record) *Store {
	s := &Store{}
	s.Replace(records)
	return s
}

// Snapshot returns the current records. The returned slice must not be
// mutated.
func (s *Store) Snapshot() []Record {
	p := s.snapshot.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	return len(s.Snapshot())
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(records []Record) {
	s.snapshot.Store(&records)
}

// Refresh reloads the snapshot from a provider. On failure the previous
// snapshot stays in place.
func (s *Store) Refresh(ctx context.Context, provider Provider) error {
	records, err := provider.ListRecipes(ctx)
	if err != nil {
		common.LogWarn("catalog refresh failed, keeping previous snapshot",
			zap.Error(err),
			zap.Int("current_size", s.Len()),
		)
		return err
	}
	s.Replace(records)
	common.LogInfo("catalog refreshed",
		zap.Int("records", len(records)),
	)
	return nil
}

// Load builds a store from a provider, degrading to an empty catalog when
// the provider fails or returns nothing. An empty catalog is recoverable:
// the engine falls back to dynamic generation.
func Load(ctx context.Context, provider Provider) *Store {
	records, err := provider.ListRecipes(ctx)
	if err != nil {
		common.LogWarn("catalog load failed, starting with empty catalog",
			zap.Error(err),
		)
		return NewStore(nil)
	}
	common.LogInfo("catalog loaded",
		zap.Int("records", len(records)),
	)
	return NewStore(records)
}
