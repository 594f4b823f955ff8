// internal/resources/surrenders.go
package resources

import (
	"context"
	"fmt"

	"home4paws-cli/internal/cache"
	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
)

const surrendersResource = "surrender-requests"

// SurrenderService manages surrender requests, the richest form in the
// system. Create and update use the multipart protocol: one
// `surrenderRequest` JSON part plus `photos` file parts.
type SurrenderService struct {
	client *httpclient.Client
	cache  cache.Store
	logger logger.Logger
}

func NewSurrenderService(client *httpclient.Client, snapshots cache.Store, log logger.Logger) *SurrenderService {
	return &SurrenderService{client: client, cache: snapshots, logger: log}
}

// List fetches every surrender request visible to the caller.
func (s *SurrenderService) List(ctx context.Context) ([]models.SurrenderRequest, error) {
	var requests []models.SurrenderRequest
	if err := s.client.Get(ctx, "/api/surrender-dogs", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Mine lists the authenticated user's surrender requests with the same
// snapshot-fallback behavior as ReportService.Mine.
func (s *SurrenderService) Mine(ctx context.Context, userKey string) (requests []models.SurrenderRequest, fromCache bool, err error) {
	err = s.client.Get(ctx, "/api/surrender-dogs/my-requests", &requests)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.Put(ctx, surrendersResource, userKey, requests); cacheErr != nil {
				s.logger.Warn("failed to cache surrender snapshot", map[string]interface{}{"error": cacheErr.Error()})
			}
		}
		return requests, false, nil
	}
	if s.cache != nil {
		var cached []models.SurrenderRequest
		if ok, _ := s.cache.Get(ctx, surrendersResource, userKey, &cached); ok {
			return cached, true, nil
		}
	}
	return nil, false, err
}

func surrenderBody(payload models.SurrenderPayload, photos []models.Photo) (*httpclient.Body, error) {
	b := httpclient.NewBuilder().AddJSON("surrenderRequest", payload)
	for _, p := range photos {
		b.AddFile("photos", p.Name, p.Data)
	}
	return b.Build()
}

// Create submits a new surrender request, optionally as a guest.
func (s *SurrenderService) Create(ctx context.Context, payload models.SurrenderPayload, photos []models.Photo) (*models.SurrenderRequest, error) {
	body, err := surrenderBody(payload, photos)
	if err != nil {
		return nil, err
	}
	var created models.SurrenderRequest
	if err := s.client.DoMultipart(ctx, "POST", "/api/surrender-dogs", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a pending request by id; 404 signals a stale edit.
func (s *SurrenderService) Update(ctx context.Context, id int64, payload models.SurrenderPayload, photos []models.Photo) (*models.SurrenderRequest, error) {
	body, err := surrenderBody(payload, photos)
	if err != nil {
		return nil, err
	}
	var updated models.SurrenderRequest
	if err := s.client.DoMultipart(ctx, "PUT", fmt.Sprintf("/api/surrender-dogs/%d", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a surrender request after the two-step confirmation.
func (s *SurrenderService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/surrender-dogs/%d", id), nil, nil)
}

// InvalidateMine drops the cached snapshot after a local mutation.
func (s *SurrenderService) InvalidateMine(ctx context.Context, userKey string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, surrendersResource, userKey)
	}
}
