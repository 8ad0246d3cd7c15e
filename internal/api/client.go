// Package api is the single choke point for every WorkZen backend call.
// It attaches the bearer token, interprets the response envelope, and maps
// transport and HTTP failures onto the shared error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/workzen/workzen-cli/internal/credstore"
	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/log"
)

// Envelope is the uniform response wrapper every backend endpoint returns.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Meta    map[string]any  `json:"meta,omitempty"`
}

// Decode unmarshals the envelope's data payload into out.
func (e *Envelope) Decode(out any) error {
	if len(e.Data) == 0 {
		return wzerrors.NewMalformedResponseError("response is missing data", nil)
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return wzerrors.NewMalformedResponseError("unexpected data payload", err)
	}
	return nil
}

// Client is the WorkZen API client. The bearer token is read from the
// credential store on every request, so a purge anywhere is visible
// immediately.
type Client struct {
	baseURL string
	http    *http.Client
	store   credstore.Store
	logger  *log.Logger

	mu                sync.Mutex
	onUnauthorized    func()
	unauthorizedFired bool
}

// NewClient creates a client for the given base URL (including the /api/v1
// prefix).
func NewClient(baseURL string, store credstore.Store, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		store:   store,
		logger:  logger,
	}
}

// SetHTTPClient replaces the underlying transport. Used by tests.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// OnUnauthorized registers the callback fired when any call receives a 401.
// The client purges credentials itself; navigation and in-memory session
// teardown belong to the subscriber. The callback fires at most once per
// authenticated period, however many concurrent 401s arrive.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// resetUnauthorizedLatch re-arms the 401 callback. Called when a new token
// is established by login.
func (c *Client) resetUnauthorizedLatch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unauthorizedFired = false
}

// Get issues a GET request and returns the parsed envelope.
func (c *Client) Get(ctx context.Context, path string) (*Envelope, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request and returns the parsed envelope.
func (c *Client) Post(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request and returns the parsed envelope.
func (c *Client) Put(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.Do(ctx, http.MethodPut, path, body)
}

// Patch issues a PATCH request and returns the parsed envelope.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Envelope, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

// Delete issues a DELETE request and returns the parsed envelope.
func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do issues an authenticated request and interprets the response per the
// backend contract.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Envelope, error) {
	return c.do(ctx, method, path, body, true)
}

func (c *Client) do(ctx context.Context, method, path string, body any, includeAuth bool) (*Envelope, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, wzerrors.Wrap(wzerrors.CodeRequestFailed, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, wzerrors.Wrap(wzerrors.CodeRequestFailed, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if includeAuth {
		if token, ok := c.store.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	logger := c.logger.With("method", method, "path", path, "request_id", requestID)
	logger.Debug("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithError(err).Debug("api transport failure")
		return nil, wzerrors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	envelope, err := c.interpret(resp)
	if err != nil {
		logger.WithError(err).Debug("api request failed")
		return nil, err
	}
	logger.Debug("api response", "status", resp.StatusCode)
	return envelope, nil
}

// interpret applies the response contract, in order: content type, JSON
// parse, HTTP status, envelope.
func (c *Client) interpret(resp *http.Response) (*Envelope, error) {
	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, wzerrors.NewServerError(resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		// A success status with an unparseable body is still a contract
		// violation for this API.
		return nil, wzerrors.NewMalformedResponseError("expected JSON, got "+contentType, nil)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wzerrors.NewNetworkError(err)
	}

	// JSON validity gates the status branch: a 401 whose body does not
	// parse is a malformed response, not a session expiry, and must not
	// purge credentials.
	if !json.Valid(raw) {
		return nil, wzerrors.NewMalformedResponseError("invalid JSON body", nil)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.failure(resp.StatusCode, raw)
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, wzerrors.NewMalformedResponseError("invalid JSON body", err)
	}
	return &envelope, nil
}

// failure maps an error status plus body to a typed error. 401 carries the
// global side effect: credentials are purged and the unauthorized callback
// fires, whoever the caller was.
func (c *Client) failure(status int, raw []byte) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Msg     string `json:"msg"`
	}
	// The body is known-valid JSON by now; a shape mismatch just means no
	// server message is available.
	_ = json.Unmarshal(raw, &body)

	switch status {
	case http.StatusUnauthorized:
		c.handleUnauthorized()
		return wzerrors.NewSessionExpiredError()
	case http.StatusNotFound:
		return wzerrors.NewNotFoundError(body.Message)
	}

	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = body.Msg
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return wzerrors.NewRequestFailedError(status, message)
}

func (c *Client) handleUnauthorized() {
	c.store.ClearAll()

	c.mu.Lock()
	fired := c.unauthorizedFired
	c.unauthorizedFired = true
	fn := c.onUnauthorized
	c.mu.Unlock()

	if !fired && fn != nil {
		fn()
	}
}
