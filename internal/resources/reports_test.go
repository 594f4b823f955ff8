package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"home4paws-cli/internal/cache"
	"home4paws-cli/internal/common/config"
	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_MineFallsBackToSnapshot(t *testing.T) {
	var failing atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/reports/my-reports", r.URL.Path)
		if failing.Load() {
			http.Error(w, `{"message":"unavailable"}`, http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode([]models.Report{{ID: 1, Name: "Asha", Status: models.ReportPending}})
	}))
	t.Cleanup(srv.Close)

	log := logger.NewTestLogger(t)
	snapshots, err := cache.NewFileStore(t.TempDir(), 15*time.Minute, log)
	require.NoError(t, err)
	client := httpclient.New(config.APIConfig{BaseURL: srv.URL, Timeout: 2000}, nil, log)
	svc := NewReportService(client, snapshots, log)
	ctx := context.Background()

	// Healthy fetch: fresh data, snapshot written.
	reports, fromCache, err := svc.Mine(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, fromCache)
	require.Len(t, reports, 1)

	// Backend down: the snapshot stands in, flagged stale.
	failing.Store(true)
	reports, fromCache, err = svc.Mine(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Len(t, reports, 1)
	assert.Equal(t, "Asha", reports[0].Name)

	// A different user has no snapshot to fall back on.
	_, _, err = svc.Mine(ctx, "user-2")
	require.Error(t, err)

	// After the local mutation invalidates the snapshot, the failure
	// surfaces instead of stale data.
	svc.InvalidateMine(ctx, "user-1")
	_, _, err = svc.Mine(ctx, "user-1")
	require.Error(t, err)
}
