package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vilaca/profile-detective/internal/api"
	"github.com/vilaca/profile-detective/internal/domain"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "profile-detective"

	// errorBodyLimit caps how much of a failed response is kept for the log.
	errorBodyLimit = 512
)

// Client implements api.ProfileClient against the public GitHub REST API.
// Requests are unauthenticated.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient api.HTTPClient
}

// NewClient creates a new GitHub client.
// Uses dependency injection for HTTPClient so tests can stub the transport.
func NewClient(config api.ClientConfig, httpClient api.HTTPClient) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// GetUser retrieves the public profile of username.
func (c *Client) GetUser(ctx context.Context, username string) (*domain.ProfileRecord, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	var record domain.ProfileRecord
	if err := c.doRequest(ctx, endpoint, &record); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}

	return &record, nil
}

// doRequest performs a GET against the API and decodes a JSON object into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", domain.ErrTransport, err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("%w: API returned status %d: %s", domain.ErrTransport, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", domain.ErrTransport, err)
	}

	// Only a single JSON object is a user; null, arrays and trailing bytes are not.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: response is not a JSON object", domain.ErrTransport)
	}
	if err := json.Unmarshal(trimmed, result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", domain.ErrTransport, err)
	}

	return nil
}
