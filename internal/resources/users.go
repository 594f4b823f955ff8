// internal/resources/users.go
package resources

import (
	"context"

	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
)

// UserService covers self-service profile management.
type UserService struct {
	client *httpclient.Client
	logger logger.Logger
}

func NewUserService(client *httpclient.Client, log logger.Logger) *UserService {
	return &UserService{client: client, logger: log}
}

// Me fetches the caller's profile.
func (s *UserService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/api/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile edits the caller's profile.
func (s *UserService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.client.Do(ctx, "PUT", "/api/users/me", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the caller's password.
func (s *UserService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return s.client.Do(ctx, "PUT", "/api/users/me/password", change, nil)
}

// DeleteAccount removes the caller's account after the two-step
// confirmation.
func (s *UserService) DeleteAccount(ctx context.Context) error {
	return s.client.Do(ctx, "DELETE", "/api/users/me", nil, nil)
}
