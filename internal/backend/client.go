// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend is the HTTP client for the document answering service.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultBaseURL follows the original service convention: same host,
	// port 5000.
	DefaultBaseURL = "http://localhost:5000"

	// askPath is the answering endpoint.
	askPath = "/api/ask"

	// DefaultTimeout bounds a single ask. Retrieval plus generation can
	// be slow, so this is generous.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize caps the response body read. A misbehaving server
	// cannot exhaust client memory.
	MaxResponseSize = 10 * 1024 * 1024

	// requestsPerSecond is the politeness limit on outgoing asks. The
	// lifecycle guard already serializes requests; the limiter only
	// smooths rapid submit-resolve-submit loops.
	requestsPerSecond = 2
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// One shared client serves every request.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnavailable indicates the service could not be reached or
	// returned something unusable. Surfaced to the user as a generic
	// connection problem.
	ErrUnavailable = errors.New("answering service unavailable")
)

// APIError is an application error reported by a well-formed backend
// response, e.g. "System not ready" or "Answer generation failed". Its
// message is user-facing.
type APIError struct {
	Message string
	Details string
	Status  int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// askRequest is the request body for the ask endpoint.
type askRequest struct {
	Question string `json:"question"`
}

// askResponse covers both response shapes: a success carries "answer"
// (optionally with the retrieved context chunks), an application error
// carries "error" and optionally "details". A body with neither field is
// a transport failure.
type askResponse struct {
	Answer  *string  `json:"answer"`
	Context []string `json:"context"`
	Error   *string  `json:"error"`
	Details string   `json:"details"`
}

// Answer is a successful response from the service.
type Answer struct {
	Text string

	// Context holds the document chunks the service answered from, when
	// it chose to return them.
	Context []string
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the answering service. The zero value is not usable;
// construct with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for the service at baseURL. An empty baseURL
// selects the default local service.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// WithTimeout sets the per-request timeout. The shared pooled transport
// is kept; only the deadline changes.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	clone := *c.httpClient
	clone.Timeout = timeout
	c.httpClient = &clone
	return c
}

// BaseURL returns the configured service URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// ASK
// =============================================================================

// Ask submits a question and returns the answer. Error taxonomy:
//
//   - *APIError: the service answered with a structured error; show its
//     message to the user.
//   - ErrUnavailable (wrapped): network failure, non-2xx without a
//     structured error, or a body lacking both fields.
//
// Ask does not retry; failure handling is the caller's.
func (c *Client) Ask(ctx context.Context, question string) (*Answer, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+askPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	var parsed askResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response (status %d)", ErrUnavailable, resp.StatusCode)
	}

	// A structured error wins regardless of HTTP status; the original
	// service pairs them (400/500/503 with an error body).
	if parsed.Error != nil {
		return nil, &APIError{
			Message: *parsed.Error,
			Details: parsed.Details,
			Status:  resp.StatusCode,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if parsed.Answer == nil {
		return nil, fmt.Errorf("%w: response has neither answer nor error", ErrUnavailable)
	}

	return &Answer{Text: *parsed.Answer, Context: parsed.Context}, nil
}

// =============================================================================
// PING
// =============================================================================

// Ping checks whether the service is reachable. Any HTTP response counts
// as alive; only transport failure reports the service down.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	resp.Body.Close()
	return nil
}
