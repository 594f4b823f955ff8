package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"home4paws-cli/internal/cache"
	"home4paws-cli/internal/common/config"
	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	controller    *Controller
	admin         *AdminController
	userSessions  *session.Store
	adminSessions *session.Store
	cache         cache.Store
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.NewTestLogger(t)
	dir := t.TempDir()
	userSessions, err := session.NewStore(dir, session.ScopeUser, log)
	require.NoError(t, err)
	adminSessions, err := session.NewStore(dir, session.ScopeAdmin, log)
	require.NoError(t, err)
	snapshots, err := cache.NewFileStore(dir, 15*time.Minute, log)
	require.NoError(t, err)

	api := config.APIConfig{BaseURL: srv.URL, Timeout: 2000}
	userClient := httpclient.New(api, userSessions, log)
	adminClient := userClient.WithTokenSource(adminSessions)

	authCfg := config.AuthConfig{
		LegacyAdminUsernames: []string{"admin"},
		LegacyAdminEmails:    []string{"admin@home4paws.com"},
	}

	return &fixture{
		controller:    NewController(userClient, userSessions, adminSessions, snapshots, authCfg, log),
		admin:         NewAdminController(adminClient, adminSessions, snapshots, log),
		userSessions:  userSessions,
		adminSessions: adminSessions,
		cache:         snapshots,
	}
}

func adminToken(t *testing.T) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "admin",
		"roles": []string{"ROLE_ADMIN"},
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

func loginHandler(t *testing.T, resp models.LoginResponse) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a stale token")
		json.NewEncoder(w).Encode(resp)
	})
}

func TestLogin_RegularUserPopulatesUserSlotOnly(t *testing.T) {
	fx := newFixture(t, loginHandler(t, models.LoginResponse{
		Token: "user-token", ID: 3, Username: "asha", Email: "asha@example.com", Roles: []string{"ROLE_USER"},
	}))

	result, err := fx.controller.Login(context.Background(), "asha", "secret")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.IsAdmin)

	assert.Equal(t, "user-token", fx.userSessions.Token())
	assert.Empty(t, fx.adminSessions.Token())
}

func TestLogin_RoleClaimRoutesToAdminSlot(t *testing.T) {
	fx := newFixture(t, loginHandler(t, models.LoginResponse{
		Token: "admin-token", ID: 9, Username: "shelter-ops", Roles: []string{"ROLE_ADMIN"},
	}))

	result, err := fx.controller.Login(context.Background(), "shelter-ops", "secret")
	require.NoError(t, err)
	assert.True(t, result.IsAdmin)
	assert.Equal(t, "admin", result.RedirectTo)

	// Admin credentials populate only the admin slot, never the user one.
	assert.Empty(t, fx.userSessions.Token())
	assert.Equal(t, "admin-token", fx.adminSessions.Token())
}

func TestLogin_TokenClaimDetectedWhenResponseOmitsRoles(t *testing.T) {
	fx := newFixture(t, loginHandler(t, models.LoginResponse{
		Token: adminToken(t), ID: 9, Username: "shelter-ops",
	}))

	result, err := fx.controller.Login(context.Background(), "shelter-ops", "secret")
	require.NoError(t, err)
	assert.True(t, result.IsAdmin)
}

func TestLogin_LegacyAdminLiteralFallback(t *testing.T) {
	// No role claims anywhere: only the configured literal identifies the
	// admin account.
	fx := newFixture(t, loginHandler(t, models.LoginResponse{
		Token: "opaque", ID: 1, Username: "admin", Email: "admin@home4paws.com",
	}))

	result, err := fx.controller.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.True(t, result.IsAdmin)
	assert.Equal(t, "opaque", fx.adminSessions.Token())
	assert.Empty(t, fx.userSessions.Token())
}

func TestLogin_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
	}{
		{"bad credentials", http.StatusUnauthorized, "Invalid username or password. Please check your credentials and try again."},
		{"disabled account", http.StatusForbidden, "Account is disabled. Please contact support."},
		{"unknown user", http.StatusNotFound, "User not found. Please check your username and try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"message": "backend detail"})
			}))

			result, err := fx.controller.Login(context.Background(), "asha", "wrong")
			require.Error(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.message, result.Error)
			assert.Empty(t, fx.userSessions.Token())
		})
	}
}

func TestRegister_FlattensFieldErrors(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Validation failed",
			"errors": map[string]string{
				"email":    "Email is already in use",
				"username": "Username is too short",
			},
		})
	}))

	message, err := fx.controller.Register(context.Background(), models.RegisterRequest{Username: "a"})
	require.Error(t, err)
	assert.Equal(t, "Email is already in use. Username is too short", message)
}

func TestRegister_PlainTextConfirmation(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.Write([]byte("User registered successfully!"))
	}))

	message, err := fx.controller.Register(context.Background(), models.RegisterRequest{Username: "asha"})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully!", message)
}

func TestLogout_ClearsOnlyTheUserScope(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ctx := context.Background()

	require.NoError(t, fx.userSessions.Set(models.AuthSession{Token: "u", UserID: 3, Username: "asha"}))
	require.NoError(t, fx.adminSessions.Set(models.AuthSession{Token: "a", UserID: 9, Username: "admin"}))

	userKey := UserKey(fx.userSessions.Current())
	adminKey := AdminKey(fx.adminSessions.Current())
	require.NoError(t, fx.cache.Put(ctx, "reports", userKey, []models.Report{{ID: 1}}))
	require.NoError(t, fx.cache.Put(ctx, "reports", adminKey, []models.Report{{ID: 2}}))

	require.NoError(t, fx.controller.Logout(ctx))

	assert.Empty(t, fx.userSessions.Token())
	assert.Equal(t, "a", fx.adminSessions.Token())

	var reports []models.Report
	ok, _ := fx.cache.Get(ctx, "reports", userKey, &reports)
	assert.False(t, ok, "the user's snapshots must be gone")
	ok, _ = fx.cache.Get(ctx, "reports", adminKey, &reports)
	assert.True(t, ok, "admin snapshots must survive a user logout")
}

func TestMe_ExpiredTokenClearsSession(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	require.NoError(t, fx.userSessions.Set(models.AuthSession{Token: "stale", UserID: 3, Username: "asha"}))
	_, err := fx.controller.Me(context.Background())
	require.Error(t, err)
	assert.Empty(t, fx.userSessions.Token(), "a 401 on /me invalidates the stored session")
}

func TestMe_Anonymous(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an anonymous session")
	}))
	_, err := fx.controller.Me(context.Background())
	assert.Error(t, err)
}

func TestAdminController_LoginAndLogout(t *testing.T) {
	fx := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/login":
			json.NewEncoder(w).Encode(models.LoginResponse{Token: "admin-token", ID: 9, Username: "admin"})
		case "/api/admin/me":
			json.NewEncoder(w).Encode(models.User{ID: 9, Username: "admin", Roles: []string{"ROLE_ADMIN"}})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	ctx := context.Background()

	result, err := fx.admin.Login(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, fx.admin.Authenticated())

	user, err := fx.admin.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	adminKey := AdminKey(fx.adminSessions.Current())
	require.NoError(t, fx.cache.Put(ctx, "reports", adminKey, []models.Report{{ID: 1}}))

	require.NoError(t, fx.admin.Logout(ctx))
	assert.False(t, fx.admin.Authenticated())
	var reports []models.Report
	ok, _ := fx.cache.Get(ctx, "reports", adminKey, &reports)
	assert.False(t, ok)
}
