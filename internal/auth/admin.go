// internal/auth/admin.go
package auth

import (
	"context"

	"home4paws-cli/internal/cache"
	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/session"
)

// AdminController is the parallel controller for the admin session. Same
// shape as Controller, against the admin-only endpoints and the admin token
// slot.
type AdminController struct {
	client   *httpclient.Client
	sessions *session.Store
	cache    cache.Store
	logger   logger.Logger
}

// NewAdminController wires the admin auth controller. client must be bound
// to the admin session store as its token source.
func NewAdminController(client *httpclient.Client, sessions *session.Store, snapshots cache.Store, log logger.Logger) *AdminController {
	return &AdminController{
		client:   client,
		sessions: sessions,
		cache:    snapshots,
		logger:   log.WithFields(map[string]interface{}{"scope": "admin"}),
	}
}

// Login exchanges admin credentials against the dedicated admin endpoint.
func (c *AdminController) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	var resp models.LoginResponse
	err := c.client.Do(ctx, "POST", "/api/admin/login",
		models.LoginRequest{Username: identifier, Password: password},
		&resp, httpclient.WithoutAuth())
	if err != nil {
		c.logger.Warn("admin login failed", map[string]interface{}{"identifier": identifier})
		return LoginResult{Error: apierrors.LoginMessage(err)}, err
	}

	sess := models.AuthSession{
		Token:    resp.Token,
		UserID:   resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Roles:    resp.Roles,
	}
	if err := c.sessions.Set(sess); err != nil {
		return LoginResult{Error: "Login succeeded but the session could not be saved."}, err
	}
	c.logger.Info("admin logged in", map[string]interface{}{"username": resp.Username})
	return LoginResult{Success: true, IsAdmin: true}, nil
}

// Me validates the stored admin token against /api/admin/me. A 401 clears
// the slot so the route guard falls back to its inline login prompt.
func (c *AdminController) Me(ctx context.Context) (*models.User, error) {
	if !c.sessions.Authenticated() {
		return nil, apierrors.NewHTTPError(401, "not logged in", nil)
	}
	var user models.User
	if err := c.client.Get(ctx, "/api/admin/me", &user); err != nil {
		if apierrors.IsUnauthorized(err) {
			_ = c.Logout(ctx)
		}
		return nil, err
	}
	return &user, nil
}

// Logout clears the admin token and only admin-keyed snapshots; the user
// scope is untouched.
func (c *AdminController) Logout(ctx context.Context) error {
	sess := c.sessions.Current()
	if sess == nil {
		return nil
	}
	if err := c.sessions.Clear(); err != nil {
		return err
	}
	if c.cache != nil {
		if err := c.cache.InvalidateUser(ctx, AdminKey(sess)); err != nil {
			c.logger.Warn("failed to clear admin cache on logout", map[string]interface{}{"error": err.Error()})
		}
	}
	c.logger.Info("admin logged out", map[string]interface{}{"username": sess.Username})
	return nil
}

// Session exposes the current admin session.
func (c *AdminController) Session() *models.AuthSession {
	return c.sessions.Current()
}

// Authenticated reports whether an admin token is stored.
func (c *AdminController) Authenticated() bool {
	return c.sessions.Authenticated()
}
