// Package gh implements the GitHub GraphQL fetcher. All queries go to one
// fixed endpoint with bearer authentication, and a fixed minimum delay is
// enforced before every outbound request to respect a shared rate budget.
package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Endpoint is the GitHub GraphQL API endpoint.
const Endpoint = "https://api.github.com/graphql"

// Client issues GraphQL queries against the GitHub API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	delay      time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the GraphQL endpoint. Used by tests.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithDelay sets the fixed pause before each outbound request.
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// NewClient creates a GitHub GraphQL client with the given bearer token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   Endpoint,
		token:      token,
		delay:      200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// graphQLRequest is the request body sent to the endpoint.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLError is one entry of the response error list.
type graphQLError struct {
	Message string `json:"message"`
}

// graphQLResponse is the response envelope. A non-empty Errors list is a
// query failure even when the HTTP status is 200.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// query issues one GraphQL request and unmarshals the data payload into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	// Crude rate-limit guard: a blocking pause before every request.
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("query failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, len(envelope.Errors))
		for i, e := range envelope.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("query errors: %s", strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode data payload: %w", err)
	}
	return nil
}

// isoTime formats a timestamp the way the GitHub API expects.
func isoTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
