// internal/resources/dogs.go

// Package resources wraps the backend's endpoint families in typed services.
// Every service is thin: it issues the call, decodes the result and leaves
// filtering, rendering and confirmation flows to the view layer.
package resources

import (
	"context"
	"fmt"

	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
)

// DogService covers the public dog catalog and owner-side dog management.
type DogService struct {
	client *httpclient.Client
	logger logger.Logger
}

func NewDogService(client *httpclient.Client, log logger.Logger) *DogService {
	return &DogService{client: client, logger: log}
}

// List fetches the whole catalog.
func (s *DogService) List(ctx context.Context) ([]models.Dog, error) {
	var dogs []models.Dog
	if err := s.client.Get(ctx, "/api/dogs", &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

// ListForSale fetches purchase-flow dogs.
func (s *DogService) ListForSale(ctx context.Context) ([]models.Dog, error) {
	var dogs []models.Dog
	if err := s.client.Get(ctx, "/api/dogs/buy", &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

// ListForAdoption fetches adoption-flow (stray) dogs.
func (s *DogService) ListForAdoption(ctx context.Context) ([]models.Dog, error) {
	var dogs []models.Dog
	if err := s.client.Get(ctx, "/api/dogs/adopt", &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

// Get fetches a single dog for the detail view.
func (s *DogService) Get(ctx context.Context, id int64) (*models.Dog, error) {
	var dog models.Dog
	if err := s.client.Get(ctx, fmt.Sprintf("/api/dogs/%d", id), &dog); err != nil {
		return nil, err
	}
	return &dog, nil
}

// Create adds a catalog entry.
func (s *DogService) Create(ctx context.Context, dog models.Dog) (*models.Dog, error) {
	var created models.Dog
	if err := s.client.Do(ctx, "POST", "/api/dogs", dog, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a catalog entry by id.
func (s *DogService) Update(ctx context.Context, id int64, dog models.Dog) (*models.Dog, error) {
	var updated models.Dog
	if err := s.client.Do(ctx, "PUT", fmt.Sprintf("/api/dogs/%d", id), dog, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a catalog entry. Callers must have run the two-step
// confirmation first.
func (s *DogService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/dogs/%d", id), nil, nil)
}
