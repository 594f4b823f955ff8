package models

import "time"

// AuthSession is one persisted bearer session. Two independent instances can
// coexist: one for the regular-user scope and one for the admin scope.
type AuthSession struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles,omitempty"`
	SavedAt   time.Time `json:"savedAt"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

// HasRole reports whether the session carries the given role claim.
func (s *AuthSession) HasRole(role string) bool {
	return hasRole(s.Roles, role)
}

// Expired reports whether the token's expiry, if known, has passed. An
// unknown expiry never reads as expired: expired tokens are otherwise only
// detected reactively when a protected call fails.
func (s *AuthSession) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// LoginRequest is the payload for POST /api/auth/login and /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful credential exchange.
type LoginResponse struct {
	Token    string   `json:"token"`
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles,omitempty"`
}
