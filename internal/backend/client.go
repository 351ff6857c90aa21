// Package backend is the HTTP client for the FateWeaver game API.
// The bot owns no game state; every read and write goes through this package.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client calls the game API.
type Client struct {
	rest *resty.Client
}

// NewClient creates a Client for the API at baseURL.
// baseURL may or may not carry the /api suffix; request paths always get exactly one.
func NewClient(baseURL string, timeout time.Duration) *Client {
	rest := resty.New().
		SetBaseURL(apiOrigin(baseURL)).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("X-Internal-Request", "true")

	return &Client{rest: rest}
}

func apiOrigin(baseURL string) string {
	trimmed := strings.TrimRight(baseURL, "/")
	return strings.TrimSuffix(trimmed, "/api")
}

func apiPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		return p
	}
	return "/api" + p
}

// errorBody is the error payload shape returned by the API.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) request(ctx context.Context, method, path string, body, result any) error {
	var eb errorBody

	req := c.rest.R().
		SetContext(ctx).
		SetError(&eb)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, apiPath(path))
	if err != nil {
		slog.Error("failed to call backend", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	slog.Debug("called backend",
		"method", method,
		"path", path,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
	)

	if resp.IsError() {
		msg := eb.Message
		if msg == "" {
			msg = eb.Error
		}
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Message:    msg,
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.request(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.request(ctx, http.MethodPost, path, body, result)
}

func (c *Client) put(ctx context.Context, path string, body, result any) error {
	return c.request(ctx, http.MethodPut, path, body, result)
}

func (c *Client) patch(ctx context.Context, path string, body, result any) error {
	return c.request(ctx, http.MethodPatch, path, body, result)
}

func (c *Client) delete(ctx context.Context, path string, body any) error {
	return c.request(ctx, http.MethodDelete, path, body, nil)
}
