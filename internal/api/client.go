package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TokenSource hands out the current bearer token, or "" when no session
// exists. Requests without a token go out unauthenticated rather than
// failing fast; the backend decides what to reject.
type TokenSource interface {
	Token() string
}

// Client is the request pipeline for one backend resource area. All domain
// services wrap one of these; there is no retrying and no caching.
type Client struct {
	baseURL string
	area    string
	httpc   *http.Client
	tokens  TokenSource
}

func NewClient(baseURL, area string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		area:    area,
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s%s request: %w", method, c.area, path, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+c.area+path, payload)
	if err != nil {
		return fmt.Errorf("build %s %s%s request: %w", method, c.area, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s%s: %w", method, c.area, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s%s response: %w", method, c.area, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s%s response: %w", method, c.area, path, err)
	}
	return nil
}
