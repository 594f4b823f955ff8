// internal/session/claims.go
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the client reads out of a bearer token. The backend
// signs and verifies tokens; here the claims are only inspected for routing
// (admin detection) and expiry hints, so the parse is deliberately
// unverified.
type TokenClaims struct {
	Subject   string
	Roles     []string
	ExpiresAt time.Time
}

// InspectToken extracts roles and expiry from a JWT without verifying the
// signature. Non-JWT opaque tokens return an error and the caller falls back
// to the login response fields.
func InspectToken(token string) (*TokenClaims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	out.Roles = extractRoles(claims)
	return out, nil
}

// extractRoles handles the claim spellings seen across backend builds:
// "roles" as a string list, "authorities" as a string list, or a single
// "role" string.
func extractRoles(claims jwt.MapClaims) []string {
	for _, key := range []string{"roles", "authorities"} {
		if raw, ok := claims[key]; ok {
			if list, ok := raw.([]interface{}); ok {
				roles := make([]string, 0, len(list))
				for _, item := range list {
					if s, ok := item.(string); ok {
						roles = append(roles, s)
					}
				}
				if len(roles) > 0 {
					return roles
				}
			}
		}
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		return []string{role}
	}
	return nil
}
