// internal/resources/reports.go
package resources

import (
	"context"
	"fmt"

	"home4paws-cli/internal/cache"
	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
)

const reportsResource = "reports"

// ReportService manages lost/injured dog reports. Create and update use the
// multipart protocol: one `report` JSON part plus `photos` file parts. The
// user's own reports are mirrored into the snapshot cache so they stay
// renderable when the backend is briefly unreachable.
type ReportService struct {
	client *httpclient.Client
	cache  cache.Store
	logger logger.Logger
}

func NewReportService(client *httpclient.Client, snapshots cache.Store, log logger.Logger) *ReportService {
	return &ReportService{client: client, cache: snapshots, logger: log}
}

// List fetches every report visible to the caller.
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := s.client.Get(ctx, "/api/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Mine lists the authenticated user's reports. The fresh result replaces the
// cached snapshot for userKey; when the fetch fails and a snapshot exists,
// the snapshot is returned with fromCache=true so the view can label it
// stale.
func (s *ReportService) Mine(ctx context.Context, userKey string) (reports []models.Report, fromCache bool, err error) {
	err = s.client.Get(ctx, "/api/reports/my-reports", &reports)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.Put(ctx, reportsResource, userKey, reports); cacheErr != nil {
				s.logger.Warn("failed to cache reports snapshot", map[string]interface{}{"error": cacheErr.Error()})
			}
		}
		return reports, false, nil
	}
	if s.cache != nil {
		var cached []models.Report
		if ok, _ := s.cache.Get(ctx, reportsResource, userKey, &cached); ok {
			return cached, true, nil
		}
	}
	return nil, false, err
}

func reportBody(payload models.ReportPayload, photos []models.Photo) (*httpclient.Body, error) {
	b := httpclient.NewBuilder().AddJSON("report", payload)
	for _, p := range photos {
		b.AddFile("photos", p.Name, p.Data)
	}
	return b.Build()
}

// Create submits a new report, optionally as a guest.
func (s *ReportService) Create(ctx context.Context, payload models.ReportPayload, photos []models.Photo) (*models.Report, error) {
	body, err := reportBody(payload, photos)
	if err != nil {
		return nil, err
	}
	var created models.Report
	if err := s.client.DoMultipart(ctx, "POST", "/api/reports", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a pending report by id. A 404 here means the report was
// deleted underneath the edit; callers drop the stale entry and reload.
func (s *ReportService) Update(ctx context.Context, id int64, payload models.ReportPayload, photos []models.Photo) (*models.Report, error) {
	body, err := reportBody(payload, photos)
	if err != nil {
		return nil, err
	}
	var updated models.Report
	if err := s.client.DoMultipart(ctx, "PUT", fmt.Sprintf("/api/reports/%d", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a report after the two-step confirmation.
func (s *ReportService) Delete(ctx context.Context, id int64) error {
	return s.client.Do(ctx, "DELETE", fmt.Sprintf("/api/reports/%d", id), nil, nil)
}

// InvalidateMine drops the cached snapshot after a local mutation so the
// next read refetches.
func (s *ReportService) InvalidateMine(ctx context.Context, userKey string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, reportsResource, userKey)
	}
}
