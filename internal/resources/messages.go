// internal/resources/messages.go
package resources

import (
	"context"
	"fmt"

	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
)

// MessageService sends contact messages and lists the caller's own.
type MessageService struct {
	client *httpclient.Client
	logger logger.Logger
}

func NewMessageService(client *httpclient.Client, log logger.Logger) *MessageService {
	return &MessageService{client: client, logger: log}
}

// Send posts a contact message, optionally as a guest.
func (s *MessageService) Send(ctx context.Context, msg models.NewContactMessage) (*models.ContactMessage, error) {
	var created models.ContactMessage
	if err := s.client.Do(ctx, "POST", "/api/contact-messages", msg, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// List fetches every message visible to the caller.
func (s *MessageService) List(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.client.Get(ctx, "/api/contact-messages", &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Mine lists the authenticated user's messages.
func (s *MessageService) Mine(ctx context.Context) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := s.client.Get(ctx, "/api/contact-messages/my-messages", &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Update edits a pending message by id; 404 signals a stale edit.
func (s *MessageService) Update(ctx context.Context, id int64, msg models.NewContactMessage) (*models.ContactMessage, error) {
	var updated models.ContactMessage
	if err := s.client.Do(ctx, "PUT", fmt.Sprintf("/api/contact-messages/%d", id), msg, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a message after the two-step confirmation.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/contact-messages/%d", id), nil, nil)
}
