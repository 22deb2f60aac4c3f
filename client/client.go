// Copyright 2026 The LegalMind Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/OwinoMichael/AI-Legal-Assistance/lib/netutil"
	"github.com/OwinoMichael/AI-Legal-Assistance/lib/session"
)

// Config holds configuration for creating a Client.
type Config struct {
	// ServerURL is the base URL of the LegalMind backend
	// (e.g. "http://localhost:8080").
	ServerURL string
	// Store persists the local session record. Required.
	Store *session.Store
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger

	// OnSessionExpired fires when a request is rejected with 401 while a
	// token was held locally. The session has already been cleared.
	OnSessionExpired func()
	// OnVerificationRequired fires when a request is rejected with 403
	// because the account's email is not verified.
	OnVerificationRequired func(email string)
}

// Client is a typed client for the LegalMind backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	store      *session.Store

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor

	// authInFlight guards against concurrent login/signup attempts.
	authInFlight atomic.Bool
}

// New creates a client with the default interceptor chain: bearer
// token attachment, the 401 session-expiry policy, and the 403
// verification policy.
func New(config Config) (*Client, error) {
	if config.ServerURL == "" {
		return nil, fmt.Errorf("client: ServerURL is required")
	}
	if config.Store == nil {
		return nil, fmt.Errorf("client: Store is required")
	}

	// Validate the URL structure. The string form (with trailing slash
	// stripped) is stored and request URLs are built by concatenation.
	if _, err := url.Parse(config.ServerURL); err != nil {
		return nil, fmt.Errorf("client: invalid ServerURL %q: %w", config.ServerURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:    strings.TrimRight(config.ServerURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		store:      config.Store,
	}
	c.requestInterceptors = []RequestInterceptor{BearerAuth(config.Store)}
	c.responseInterceptors = []ResponseInterceptor{
		SessionExpiryPolicy(config.Store, config.OnSessionExpired),
		VerificationPolicy(config.OnVerificationRequired),
	}
	return c, nil
}

// Use appends a request interceptor to the chain.
func (c *Client) Use(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// UseResponse appends a response interceptor to the chain.
func (c *Client) UseResponse(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// Store returns the session store the client persists records to.
func (c *Client) Store() *session.Store {
	return c.store
}

// CloseIdleConnections closes idle HTTP connections in the underlying
// transport's connection pool.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// doRequest performs a JSON API request. On non-2xx responses the
// parsed *APIError is returned alongside the raw body, after the
// response interceptor chain has observed it.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query ...url.Values) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 && query[0] != nil {
		requestURL += "?" + query[0].Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("client: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	return c.send(request, method, path)
}

// doRequestRaw performs a request with a caller-supplied body and
// content type (for multipart document uploads).
func (c *Client) doRequestRaw(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	return c.send(request, method, path)
}

// doRequestStream performs a GET whose body is streamed to the caller.
// The caller owns the returned body and must close it.
func (c *Client) doRequestStream(ctx context.Context, path string) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}
	for _, interceptor := range c.requestInterceptors {
		if err := interceptor(request); err != nil {
			return nil, fmt.Errorf("client: request interceptor: %w", err)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("client: request to GET %s failed: %w", path, err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return response.Body, nil
	}

	defer response.Body.Close()
	apiErr := c.classify(response.StatusCode, []byte(netutil.ErrorBody(response.Body)), http.MethodGet, path)
	return nil, apiErr
}

func (c *Client) send(request *http.Request, method, path string) ([]byte, error) {
	for _, interceptor := range c.requestInterceptors {
		if err := interceptor(request); err != nil {
			return nil, fmt.Errorf("client: request interceptor: %w", err)
		}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("client: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, fmt.Errorf("client: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	return responseBody, c.classify(response.StatusCode, responseBody, method, path)
}

// classify turns an error response into an *APIError and runs the
// response interceptor chain on it. Non-JSON bodies and bodies without
// an error code become SERVER_ERROR.
func (c *Client) classify(statusCode int, body []byte, method, path string) *APIError {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Kind == "" {
		apiErr = APIError{
			Kind:    ErrKindServerError,
			Message: strings.TrimSpace(string(body)),
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(statusCode)
		}
	}
	apiErr.StatusCode = statusCode

	c.logger.Debug("api error",
		"method", method,
		"path", path,
		"status", statusCode,
		"kind", string(apiErr.Kind))

	for _, interceptor := range c.responseInterceptors {
		interceptor(&apiErr)
	}
	return &apiErr
}
