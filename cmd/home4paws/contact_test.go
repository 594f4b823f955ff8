package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"home4paws-cli/internal/app"
	"home4paws-cli/internal/common/config"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the global client against a fake backend so command
// handlers can run the same way the binary does.
func newTestApp(t *testing.T, handler http.Handler, input string, errOut *bytes.Buffer) {
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

	var out bytes.Buffer
	a.Prompter = prompt.New(strings.NewReader(input), &out, errOut)
	client = a
}

func TestContactEdit_StaleMessageReloadsList(t *testing.T) {
	var mineCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/contact-messages/my-messages", func(w http.ResponseWriter, r *http.Request) {
		mineCalls.Add(1)
		_ = json.NewEncoder(w).Encode([]models.ContactMessage{
			{ID: 7, Name: "Asha", Email: "asha@example.com", Message: "Is Rex still available?", Status: models.MessagePending},
		})
	})
	mux.HandleFunc("/api/contact-messages/7", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Contact message not found"})
	})

	var errOut bytes.Buffer
	// Accept the prefilled name, email and message.
	newTestApp(t, mux, "\n\n\n", &errOut)

	cmd := newContactEditCmd()
	err := cmd.RunE(cmd, []string{"7"})
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "That message no longer exists")
	// One fetch to locate the record, one reload after the 404.
	assert.Equal(t, int32(2), mineCalls.Load())
}

func TestContactEdit_ServerFailureKeepsRetryMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/contact-messages/my-messages", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.ContactMessage{
			{ID: 7, Name: "Asha", Email: "asha@example.com", Message: "Hello", Status: models.MessagePending},
		})
	})
	mux.HandleFunc("/api/contact-messages/7", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "database unavailable"})
	})

	var errOut bytes.Buffer
	newTestApp(t, mux, "\n\n\n", &errOut)

	cmd := newContactEditCmd()
	err := cmd.RunE(cmd, []string{"7"})
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Could not update the message")
}
