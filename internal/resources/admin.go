// internal/resources/admin.go
package resources

import (
	"context"
	"fmt"

	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
)

// AdminService covers the elevated management and moderation endpoints. Its
// client must be bound to the admin token slot. Status updates never mutate
// anything locally; callers patch their snapshot only from the confirmed
// response.
type AdminService struct {
	client *httpclient.Client
	logger logger.Logger
}

func NewAdminService(client *httpclient.Client, log logger.Logger) *AdminService {
	return &AdminService{client: client, logger: log}
}

// --- users ---

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.client.Get(ctx, "/api/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/admin/users/%d", id), nil, nil)
}

// --- dogs ---

func (s *AdminService) ListDogs(ctx context.Context) ([]models.Dog, error) {
	var dogs []models.Dog
	if err := s.client.Get(ctx, "/api/admin/dogs", &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

func (s *AdminService) CreateDog(ctx context.Context, dog models.Dog) (*models.Dog, error) {
	var created models.Dog
	if err := s.client.Do(ctx, "POST", "/api/admin/dogs", dog, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *AdminService) UpdateDog(ctx context.Context, id int64, dog models.Dog) (*models.Dog, error) {
	var updated models.Dog
	if err := s.client.Do(ctx, "PUT", fmt.Sprintf("/api/admin/dogs/%d", id), dog, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *AdminService) DeleteDog(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/admin/dogs/%d", id), nil, nil)
}

// --- applications ---

func (s *AdminService) ListApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := s.client.Get(ctx, "/api/admin/applications", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// SetApplicationStatus approves or rejects an application and returns the
// confirmed record.
func (s *AdminService) SetApplicationStatus(ctx context.Context, id int64, update models.ApplicationStatusUpdate) (*models.Application, error) {
	var app models.Application
	if err := s.client.Do(ctx, "PUT", fmt.Sprintf("/api/admin/applications/%d/status", id), update, &app); err != nil {
		return nil, err
	}
	s.logger.Info("application status updated", map[string]interface{}{
		"id":     id,
		"status": string(update.Status),
	})
	return &app, nil
}

func (s *AdminService) DeleteApplication(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/admin/applications/%d", id), nil, nil)
}

// --- reports ---

func (s *AdminService) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := s.client.Get(ctx, "/api/admin/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *AdminService) SetReportStatus(ctx context.Context, id int64, update models.ReportStatusUpdate) (*models.Report, error) {
	var report models.Report
	if err := s.client.Do(ctx, "PUT", fmt.Sprintf("/api/admin/reports/%d/status", id), update, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *AdminService) DeleteReport(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/admin/reports/%d", id), nil, nil)
}

// --- surrender submissions ---

func (s *AdminService) ListSurrenders(ctx context.Context) ([]models.SurrenderRequest, error) {
	var requests []models.SurrenderRequest
	if err := s.client.Get(ctx, "/api/admin/surrender-submissions", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *AdminService) SetSurrenderStatus(ctx context.Context, id int64, update models.SurrenderStatusUpdate) (*models.SurrenderRequest, error) {
	var request models.SurrenderRequest
	if err := s.client.Do(ctx, "PUT", fmt.Sprintf("/api/admin/surrender-submissions/%d/status", id), update, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *AdminService) DeleteSurrender(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/admin/surrender-submissions/%d", id), nil, nil)
}

// --- contact messages ---

func (s *AdminService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.client.Get(ctx, "/api/admin/contact-messages", &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// RespondToMessage sends the admin response and returns the confirmed
// record.
func (s *AdminService) RespondToMessage(ctx context.Context, id int64, response models.MessageResponse) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.client.Do(ctx, "PUT", fmt.Sprintf("/api/admin/contact-messages/%d/respond", id), response, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *AdminService) DeleteMessage(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/admin/contact-messages/%d", id), nil, nil)
}
