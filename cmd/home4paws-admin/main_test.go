package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"home4paws-cli/internal/app"
	"home4paws-cli/internal/common/config"
	"home4paws-cli/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, handler http.Handler) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		API:     config.APIConfig{BaseURL: srv.URL, Timeout: 2000},
		Storage: config.StorageConfig{Dir: t.TempDir()},
		Cache:   config.CacheConfig{Backend: "file", TTLMinutes: 15},
	}
	a, err := app.NewWithConfig(cfg, logger.NewTestLogger(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)
	client = a
}

func TestWatchDashboard_StopsOnContextCancel(t *testing.T) {
	newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	ctx, cancel := context.WithCancel(context.Background())

	var (
		out bytes.Buffer
		mu  sync.Mutex
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		mu.Lock()
		defer mu.Unlock()
		watchDashboard(ctx, &out, 10*time.Millisecond)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not stop after cancellation")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, out.String(), "---")
}
