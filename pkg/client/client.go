// Package client talks to the ride request gateway over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"riderequest/pkg/models"
)

// HTTPError is returned for any non-2xx gateway response.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Submit posts a ride request. Both 201 (stored) and 200 (logged only) are successes;
// callers tell them apart by Data.ID.
func (c *Client) Submit(ctx context.Context, source, dest, userID string) (*models.RideRequestResponse, error) {
	body, err := json.Marshal(models.CreateRideRequest{
		SourceLocation: source,
		DestLocation:   dest,
		UserID:         userID,
	})
	if err != nil {
		return nil, err
	}

	var out models.RideRequestResponse
	if err := c.do(ctx, http.MethodPost, "/api/ride-request", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAll(ctx context.Context) (*models.RideRequestListResponse, error) {
	var out models.RideRequestListResponse
	if err := c.do(ctx, http.MethodGet, "/api/ride-requests", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage prefers the envelope's message/error fields and falls back to the raw body.
func errorMessage(raw []byte) string {
	var env models.ErrorResponse
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		if env.Error != "" {
			return env.Message + ": " + env.Error
		}
		return env.Message
	}
	return strings.TrimSpace(string(raw))
}
