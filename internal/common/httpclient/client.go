// internal/common/httpclient/client.go
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"home4paws-cli/internal/common/config"
	apierrors "home4paws-cli/internal/common/errors"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/common/metrics"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for outgoing requests. Reads must be
// atomic with respect to concurrent login/logout; the session store
// guarantees that.
type TokenSource interface {
	Token() string
}

// Client is the single gateway for all backend calls. It prepends the
// configured base URL, attaches the Authorization header when a token is
// present, serializes JSON bodies, passes multipart bodies through unchanged
// and normalizes every failure into an *apierrors.APIError.
type Client struct {
	api        config.APIConfig
	httpClient *http.Client
	tokens     TokenSource
	logger     logger.Logger
}

// requestOptions controls per-call behavior.
type requestOptions struct {
	noAuth bool
}

// Option customizes a single request.
type Option func(*requestOptions)

// WithoutAuth suppresses the Authorization header even when a token exists,
// used by the public catalog and guest submissions.
func WithoutAuth() Option {
	return func(o *requestOptions) { o.noAuth = true }
}

// New creates a gateway client. tokens may be nil for a purely anonymous
// client.
func New(api config.APIConfig, tokens TokenSource, log logger.Logger) *Client {
	return &Client{
		api: api,
		httpClient: &http.Client{
			Timeout: time.Duration(api.Timeout) * time.Millisecond,
		},
		tokens: tokens,
		logger: log,
	}
}

// WithTokenSource returns a copy of the client bound to a different token
// source. The user and admin controllers share one transport but never one
// token slot.
func (c *Client) WithTokenSource(tokens TokenSource) *Client {
	clone := *c
	clone.tokens = tokens
	return &clone
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}, opts ...Option) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Do issues a request with an optional JSON body and decodes the JSON
// response into out (out may be nil to discard the body).
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}, opts ...Option) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, reader, contentType, out, opts...)
}

// DoMultipart issues a request whose body was assembled by a Builder. The
// body is passed through unchanged.
func (c *Client) DoMultipart(ctx context.Context, method, path string, form *Body, out interface{}, opts ...Option) error {
	return c.send(ctx, method, path, bytes.NewReader(form.Bytes()), form.ContentType(), out, opts...)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}, opts ...Option) error {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	url := c.api.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if !options.noAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	endpoint := sanitizeEndpoint(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APIRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestFailures.WithLabelValues(method, endpoint).Inc()
		c.logger.Warn("request failed", map[string]interface{}{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return apierrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(method, endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp.StatusCode, raw)
		c.logger.Debug("request returned error status", map[string]interface{}{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
			"code":   string(apiErr.Code),
		})
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Some endpoints answer with a plain-text body (registration
		// confirmations). A string destination takes it verbatim.
		if s, ok := out.(*string); ok {
			*s = string(raw)
			return nil
		}
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// errorBody covers the backend's error shapes: a single message, a map of
// field errors, or both.
type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func decodeError(status int, raw []byte) *apierrors.APIError {
	var body errorBody
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		message := body.Message
		if message == "" {
			message = body.Error
		}
		return apierrors.NewHTTPError(status, message, body.Errors)
	}
	// Raw string response
	return apierrors.NewHTTPError(status, strings.TrimSpace(string(raw)), nil)
}

var idSegment = regexp.MustCompile(`/\d+(/|$)`)

// sanitizeEndpoint collapses numeric path segments so metric labels stay
// low-cardinality.
func sanitizeEndpoint(path string) string {
	return idSegment.ReplaceAllString(path, "/{id}$1")
}
