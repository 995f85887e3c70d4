package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/five82/clipdeck/internal/clip"
	"github.com/five82/clipdeck/internal/logging"
)

// Ensure Client implements Backend at compile time.
var _ Backend = (*Client)(nil)

// Client talks to the clipboard backend's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:7488"
	defaultUserAgent = "clipdeck/0.1"
	requestTimeout   = 5 * time.Second

	// maxErrorBody caps how much of an error response is read into the
	// error message.
	maxErrorBody = 4 << 10
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// List retrieves the saved entries matching query. Entries that fail
// validation are dropped and logged.
func (c *Client) List(ctx context.Context, query string) (clip.List, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("s", query)
	rel := &url.URL{Path: "/api/items", RawQuery: values.Encode()}

	var payload []clip.Entry
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	list := make(clip.List, 0, len(payload))
	for i, e := range payload {
		if err := e.Validate(); err != nil {
			logging.Warn("dropping backend entry %d (%s): %v", i, e.Kind, err)
			continue
		}
		list = append(list, e)
	}
	return list, nil
}

type itemRequest struct {
	Item clip.Entry `json:"item"`
}

// Write asks the backend to make entry the current clipboard content.
func (c *Client) Write(ctx context.Context, entry clip.Entry) (Status, error) {
	return c.mutate(ctx, "/api/set_data", entry)
}

// Remove asks the backend to delete entry from its history.
func (c *Client) Remove(ctx context.Context, entry clip.Entry) (Status, error) {
	return c.mutate(ctx, "/api/delete_item", entry)
}

func (c *Client) mutate(ctx context.Context, path string, entry clip.Entry) (Status, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var status Status
	if err := c.doURL(ctx, http.MethodPost, &url.URL{Path: path}, itemRequest{Item: entry}, &status); err != nil {
		return "", err
	}
	return status, nil
}

// ToggleVisibility forwards a show/hide request. The response body is
// returned verbatim for logging.
func (c *Client) ToggleVisibility(ctx context.Context) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	var raw json.RawMessage
	if err := c.doURL(ctx, http.MethodPost, &url.URL{Path: "/api/toggle_window"}, nil, &raw); err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(resp.Body)
		logging.Logger().Debug().
			Str("request_id", requestID).
			Str("path", rel.Path).
			Int("status", resp.StatusCode).
			Msg("backend request failed")
		if msg == "" {
			return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
		}
		return fmt.Errorf("api %s returned status %d: %s", rel.Path, resp.StatusCode, msg)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a readable message from an error response. A JSON
// string body is unquoted; anything else is used as plain text.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
