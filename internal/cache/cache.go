// internal/cache/cache.go

// Package cache is the stale-while-revalidate layer for per-user list
// snapshots ("my reports", "my surrender requests"). Views render a cached
// snapshot immediately and replace it once the authoritative refetch lands.
//
// Contract: keys are (resource, userKey); a logout invalidates every entry
// for that userKey and nothing else, so the user and admin scopes never
// clear each other.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"home4paws-cli/internal/common/config"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/common/metrics"
)

// Store is the snapshot cache contract.
type Store interface {
	// Get decodes the cached snapshot for (resource, userKey) into out and
	// reports whether a fresh entry existed.
	Get(ctx context.Context, resource, userKey string, out interface{}) (bool, error)
	// Put stores a snapshot, stamping it with the current time.
	Put(ctx context.Context, resource, userKey string, value interface{}) error
	// Invalidate drops one entry.
	Invalidate(ctx context.Context, resource, userKey string) error
	// InvalidateUser drops every entry for userKey. Called on logout.
	InvalidateUser(ctx context.Context, userKey string) error
	Close() error
}

// snapshot is the stored envelope.
type snapshot struct {
	Data    json.RawMessage `json:"data"`
	SavedAt time.Time       `json:"savedAt"`
}

func encodeSnapshot(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return json.Marshal(&snapshot{Data: data, SavedAt: time.Now().UTC()})
}

func decodeSnapshot(raw []byte, ttl time.Duration, out interface{}) (bool, error) {
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return false, nil // unreadable entries read as misses
	}
	if ttl > 0 && time.Since(snap.SavedAt) > ttl {
		return false, nil
	}
	if err := json.Unmarshal(snap.Data, out); err != nil {
		return false, nil
	}
	return true, nil
}

func recordHit(resource string)  { metrics.CacheHits.WithLabelValues(resource).Inc() }
func recordMiss(resource string) { metrics.CacheMisses.WithLabelValues(resource).Inc() }

// New builds the configured backend.
func New(cfg config.CacheConfig, storageDir string, log logger.Logger) (Store, error) {
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute
	switch cfg.Backend {
	case "redis":
		return NewRedisStore(cfg.Redis, ttl, log)
	case "file":
		return NewFileStore(storageDir, ttl, log)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
