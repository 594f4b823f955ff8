// internal/auth/controller.go

// Package auth implements the login/register/logout flows for the two
// session scopes. The user and admin controllers are parallel and
// independent: separate endpoints, separate token slots, separate cache
// invalidation.
package auth

import (
	"context"
	"fmt"

	"home4paws-cli/internal/cache"
	"home4paws-cli/internal/common/config"
	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/session"
)

// LoginResult tells the caller how to route after a credential exchange.
type LoginResult struct {
	Success    bool
	IsAdmin    bool
	RedirectTo string
	Error      string
}

// Controller drives the regular-user session. It also holds the admin slot
// so a login with admin-matching credentials can populate the admin session
// instead of the user one.
type Controller struct {
	client        *httpclient.Client
	sessions      *session.Store
	adminSessions *session.Store
	cache         cache.Store
	cfg           config.AuthConfig
	logger        logger.Logger
}

// NewController wires the user auth controller. client must be bound to the
// user session store as its token source.
func NewController(client *httpclient.Client, sessions, adminSessions *session.Store, snapshots cache.Store, cfg config.AuthConfig, log logger.Logger) *Controller {
	return &Controller{
		client:        client,
		sessions:      sessions,
		adminSessions: adminSessions,
		cache:         snapshots,
		cfg:           cfg,
		logger:        log.WithFields(map[string]interface{}{"scope": "user"}),
	}
}

// Login exchanges credentials and decides which session to populate. Admin
// logins never touch the user slot and vice versa; the caller routes on
// IsAdmin/RedirectTo.
func (c *Controller) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	var resp models.LoginResponse
	err := c.client.Do(ctx, "POST", "/api/auth/login",
		models.LoginRequest{Username: identifier, Password: password},
		&resp, httpclient.WithoutAuth())
	if err != nil {
		c.logger.Warn("login failed", map[string]interface{}{"identifier": identifier})
		return LoginResult{Error: apierrors.LoginMessage(err)}, err
	}

	sess := models.AuthSession{
		Token:    resp.Token,
		UserID:   resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Roles:    resp.Roles,
	}

	if c.isAdmin(identifier, &resp) {
		// Admin credentials populate only the admin slot, never the user one.
		if err := c.adminSessions.Set(sess); err != nil {
			return LoginResult{Error: "Login succeeded but the session could not be saved."}, err
		}
		c.logger.Info("admin logged in", map[string]interface{}{"username": resp.Username})
		return LoginResult{Success: true, IsAdmin: true, RedirectTo: "admin"}, nil
	}

	if err := c.sessions.Set(sess); err != nil {
		return LoginResult{Error: "Login succeeded but the session could not be saved."}, err
	}
	c.logger.Info("logged in", map[string]interface{}{"username": resp.Username})
	return LoginResult{Success: true}, nil
}

// isAdmin prefers role claims (login response or token) and keeps the
// literal username/email match only as a fallback for backend builds that
// issue no role claims.
func (c *Controller) isAdmin(identifier string, resp *models.LoginResponse) bool {
	roles := resp.Roles
	if len(roles) == 0 {
		if claims, err := session.InspectToken(resp.Token); err == nil {
			roles = claims.Roles
		}
	}
	for _, r := range roles {
		if r == "ADMIN" || r == "ROLE_ADMIN" {
			return true
		}
	}
	for _, u := range c.cfg.LegacyAdminUsernames {
		if identifier == u || resp.Username == u {
			return true
		}
	}
	for _, e := range c.cfg.LegacyAdminEmails {
		if identifier == e || resp.Email == e {
			return true
		}
	}
	return false
}

// Register posts a registration payload. Backend validation errors are
// flattened into one display string.
func (c *Controller) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var message string
	err := c.client.Do(ctx, "POST", "/api/auth/register", req, &message, httpclient.WithoutAuth())
	if err != nil {
		if apiErr, ok := apierrors.AsAPIError(err); ok {
			return apiErr.FlattenFieldErrors(), err
		}
		return "Registration failed. Please try again.", err
	}
	if message == "" {
		message = "Registration successful. You can now log in."
	}
	return message, nil
}

// Me fetches the profile for the stored token. A 401 means the token has
// expired or been revoked; the session is cleared so the next command starts
// anonymous.
func (c *Controller) Me(ctx context.Context) (*models.User, error) {
	if !c.sessions.Authenticated() {
		return nil, apierrors.NewHTTPError(401, "not logged in", nil)
	}
	var user models.User
	if err := c.client.Get(ctx, "/api/users/me", &user); err != nil {
		if apierrors.IsUnauthorized(err) {
			_ = c.Logout(ctx)
		}
		return nil, err
	}
	return &user, nil
}

// Logout clears the user token and only that user's cached snapshots. The
// admin scope is untouched.
func (c *Controller) Logout(ctx context.Context) error {
	sess := c.sessions.Current()
	if sess == nil {
		return nil
	}
	if err := c.sessions.Clear(); err != nil {
		return err
	}
	if c.cache != nil {
		if err := c.cache.InvalidateUser(ctx, UserKey(sess)); err != nil {
			c.logger.Warn("failed to clear user cache on logout", map[string]interface{}{"error": err.Error()})
		}
	}
	c.logger.Info("logged out", map[string]interface{}{"username": sess.Username})
	return nil
}

// Session exposes the current user session to views.
func (c *Controller) Session() *models.AuthSession {
	return c.sessions.Current()
}

// UserKey is the cache key prefix for a regular-user session.
func UserKey(sess *models.AuthSession) string {
	return fmt.Sprintf("user-%d", sess.UserID)
}

// AdminKey is the cache key prefix for an admin session.
func AdminKey(sess *models.AuthSession) string {
	return fmt.Sprintf("admin-%d", sess.UserID)
}
