// Package cache stores rendered recipe responses keyed by the normalized
// request, so identical ingredient lists are served without re-synthesis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// ResponseCache is the read/write surface the recipe handler uses. Both the
// in-memory manager and the Redis service implement it.
type ResponseCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}

// Key derives the cache key for a request: the sorted, lowercased ingredient
// list plus the random flag, hashed. Requests that differ only in ingredient
// order share a key; random requests never collide with deterministic ones.
func Key(ingredients []string, isRandom bool) string {
	names := make([]string, 0, len(ingredients))
	for _, name := range ingredients {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	raw := strings.Join(names, ",")
	if isRandom {
		raw += ":random"
	}
	sum := sha256.Sum256([]byte(raw))
	return "recipe:" + hex.EncodeToString(sum[:])
}
