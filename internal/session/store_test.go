package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mintToken signs a throwaway JWT; the store never verifies signatures so any
// key works.
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestStore_ScopesAreIndependent(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewTestLogger(t)

	userStore, err := NewStore(dir, ScopeUser, log)
	require.NoError(t, err)
	adminStore, err := NewStore(dir, ScopeAdmin, log)
	require.NoError(t, err)

	require.NoError(t, userStore.Set(models.AuthSession{Token: "user-token", UserID: 1, Username: "asha"}))
	require.NoError(t, adminStore.Set(models.AuthSession{Token: "admin-token", UserID: 9, Username: "admin"}))

	assert.Equal(t, "user-token", userStore.Token())
	assert.Equal(t, "admin-token", adminStore.Token())

	// Clearing one slot never touches the other.
	require.NoError(t, userStore.Clear())
	assert.Empty(t, userStore.Token())
	assert.False(t, userStore.Authenticated())
	assert.Equal(t, "admin-token", adminStore.Token())
}

func TestStore_PersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewTestLogger(t)

	first, err := NewStore(dir, ScopeUser, log)
	require.NoError(t, err)
	require.NoError(t, first.Set(models.AuthSession{Token: "tok", UserID: 3, Username: "asha", Email: "asha@example.com"}))

	second, err := NewStore(dir, ScopeUser, log)
	require.NoError(t, err)
	sess := second.Current()
	require.NotNil(t, sess)
	assert.Equal(t, "tok", sess.Token)
	assert.Equal(t, int64(3), sess.UserID)
	assert.Equal(t, "asha", sess.Username)
}

func TestStore_CorruptFileYieldsAnonymous(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session-user.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewStore(dir, ScopeUser, logger.NewTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, store.Current())
	assert.False(t, store.Authenticated())
	// The unreadable file is gone, not re-read on every start.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_SetFillsClaimsFromToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := mintToken(t, jwt.MapClaims{
		"sub":   "asha",
		"exp":   exp.Unix(),
		"roles": []string{"ROLE_USER", "ROLE_ADMIN"},
	})

	store, err := NewStore(t.TempDir(), ScopeUser, logger.NewTestLogger(t))
	require.NoError(t, err)
	require.NoError(t, store.Set(models.AuthSession{Token: token, Username: "asha"}))

	sess := store.Current()
	require.NotNil(t, sess)
	assert.True(t, sess.ExpiresAt.Equal(exp))
	assert.True(t, sess.HasRole("ADMIN"))
	assert.False(t, sess.Expired())
}

func TestStore_OpaqueTokenIsStoredAsIs(t *testing.T) {
	store, err := NewStore(t.TempDir(), ScopeUser, logger.NewTestLogger(t))
	require.NoError(t, err)
	require.NoError(t, store.Set(models.AuthSession{Token: "opaque-session-id", Username: "asha"}))

	sess := store.Current()
	require.NotNil(t, sess)
	assert.True(t, sess.ExpiresAt.IsZero())
	assert.False(t, sess.Expired(), "unknown expiry never reads as expired")
}

func TestInspectToken(t *testing.T) {
	t.Run("roles claim", func(t *testing.T) {
		claims, err := InspectToken(mintToken(t, jwt.MapClaims{"roles": []string{"ROLE_ADMIN"}}))
		require.NoError(t, err)
		assert.Equal(t, []string{"ROLE_ADMIN"}, claims.Roles)
	})

	t.Run("authorities claim", func(t *testing.T) {
		claims, err := InspectToken(mintToken(t, jwt.MapClaims{"authorities": []string{"ROLE_USER"}}))
		require.NoError(t, err)
		assert.Equal(t, []string{"ROLE_USER"}, claims.Roles)
	})

	t.Run("single role claim", func(t *testing.T) {
		claims, err := InspectToken(mintToken(t, jwt.MapClaims{"role": "ADMIN"}))
		require.NoError(t, err)
		assert.Equal(t, []string{"ADMIN"}, claims.Roles)
	})

	t.Run("not a JWT", func(t *testing.T) {
		_, err := InspectToken("plain-token")
		assert.Error(t, err)
	})
}
