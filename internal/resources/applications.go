// internal/resources/applications.go
package resources

import (
	"context"

	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
)

// ApplicationService files adoption/purchase applications and lists the
// caller's own.
type ApplicationService struct {
	client *httpclient.Client
	logger logger.Logger
}

func NewApplicationService(client *httpclient.Client, log logger.Logger) *ApplicationService {
	return &ApplicationService{client: client, logger: log}
}

// Submit files an application against a dog. Works for guests too; the
// gateway simply omits the auth header when no token is stored.
func (s *ApplicationService) Submit(ctx context.Context, req models.NewApplicationRequest) (*models.Application, error) {
	var created models.Application
	if err := s.client.Do(ctx, "POST", "/api/applications", req, &created); err != nil {
		return nil, err
	}
	s.logger.Info("application submitted", map[string]interface{}{
		"dogId": req.DogID,
		"type":  string(req.Type),
	})
	return &created, nil
}

// Mine lists the authenticated user's applications.
func (s *ApplicationService) Mine(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := s.client.Get(ctx, "/api/applications/my-applications", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
