package cache

import (
	"context"
	"testing"
	"time"

	"home4paws-cli/internal/common/config"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns both Store implementations so the contract tests run
// against each.
func backends(t *testing.T) map[string]Store {
	log := logger.NewTestLogger(t)

	fileStore, err := NewFileStore(t.TempDir(), 15*time.Minute, log)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redisStore, err := NewRedisStore(config.RedisConfig{Address: mr.Addr()}, 15*time.Minute, log)
	require.NoError(t, err)
	t.Cleanup(func() { redisStore.Close() })

	return map[string]Store{"file": fileStore, "redis": redisStore}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			reports := []models.Report{{ID: 1, Name: "Asha", Status: models.ReportPending}}
			require.NoError(t, store.Put(ctx, "reports", "user-1", reports))

			var got []models.Report
			ok, err := store.Get(ctx, "reports", "user-1", &got)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, reports, got)
		})
	}
}

func TestStore_MissOnUnknownKey(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var got []models.Report
			ok, err := store.Get(context.Background(), "reports", "nobody", &got)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_InvalidateUserIsScoped(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, "reports", "user-1", []models.Report{{ID: 1}}))
			require.NoError(t, store.Put(ctx, "surrender-requests", "user-1", []models.SurrenderRequest{{SurrenderID: 2}}))
			require.NoError(t, store.Put(ctx, "reports", "admin-9", []models.Report{{ID: 3}}))

			// A user logout must clear every snapshot of that user and no
			// one else's.
			require.NoError(t, store.InvalidateUser(ctx, "user-1"))

			var reports []models.Report
			ok, _ := store.Get(ctx, "reports", "user-1", &reports)
			assert.False(t, ok)
			var requests []models.SurrenderRequest
			ok, _ = store.Get(ctx, "surrender-requests", "user-1", &requests)
			assert.False(t, ok)

			ok, err := store.Get(ctx, "reports", "admin-9", &reports)
			require.NoError(t, err)
			assert.True(t, ok, "the admin scope must survive a user logout")
		})
	}
}

func TestStore_InvalidateSingleEntry(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, "reports", "user-1", []models.Report{{ID: 1}}))
			require.NoError(t, store.Put(ctx, "surrender-requests", "user-1", []models.SurrenderRequest{{SurrenderID: 2}}))

			require.NoError(t, store.Invalidate(ctx, "reports", "user-1"))

			var reports []models.Report
			ok, _ := store.Get(ctx, "reports", "user-1", &reports)
			assert.False(t, ok)
			var requests []models.SurrenderRequest
			ok, _ = store.Get(ctx, "surrender-requests", "user-1", &requests)
			assert.True(t, ok)
		})
	}
}

func TestStore_InvalidateUserEmptyKeyIsNoOp(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, store.InvalidateUser(context.Background(), ""))
		})
	}
}

func TestFileStore_ExpiredEntryReadsAsMiss(t *testing.T) {
	log := logger.NewTestLogger(t)
	store, err := NewFileStore(t.TempDir(), time.Minute, log)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "reports", "user-1", []models.Report{{ID: 1}}))

	// Shrink the TTL so the just-written entry is already stale.
	store.ttl = time.Nanosecond
	time.Sleep(time.Millisecond)

	var got []models.Report
	ok, err := store.Get(ctx, "reports", "user-1", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_EntriesExpireWithRedisTTL(t *testing.T) {
	log := logger.NewTestLogger(t)
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(config.RedisConfig{Address: mr.Addr()}, time.Minute, log)
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "reports", "user-1", []models.Report{{ID: 1}}))
	mr.FastForward(2 * time.Minute)

	var got []models.Report
	ok, err := store.Get(ctx, "reports", "user-1", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNew_SelectsBackend(t *testing.T) {
	log := logger.NewTestLogger(t)

	fileStore, err := New(config.CacheConfig{Backend: "file", TTLMinutes: 15}, t.TempDir(), log)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, fileStore)

	_, err = New(config.CacheConfig{Backend: "memcached"}, t.TempDir(), log)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	redisStore, err := New(config.CacheConfig{
		Backend:    "redis",
		TTLMinutes: 15,
		Redis:      config.RedisConfig{Address: mr.Addr()},
	}, t.TempDir(), log)
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, redisStore)
	redisStore.Close()
}
