package models

// User is the profile returned by /api/users/me and the admin user list.
type User struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	Enabled   bool     `json:"enabled"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// HasRole reports whether the profile carries the given role, accepting both
// the bare and the Spring-style ROLE_ prefixed spelling.
func (u *User) HasRole(role string) bool {
	return hasRole(u.Roles, role)
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role || r == "ROLE_"+role {
			return true
		}
	}
	return false
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ProfileUpdate is the payload for PUT /api/users/me.
type ProfileUpdate struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// PasswordChange is the payload for PUT /api/users/me/password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
