package feedsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/comunidad/internal/domain/feeds"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
	userAgent      = "comunidad-feeds/1.0"
)

// Client downloads published spreadsheet CSV exports.
type Client struct {
	httpClient *http.Client
	maxBytes   int64
}

// NewClient builds a fetcher with the given timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{httpClient: &http.Client{Timeout: timeout}, maxBytes: maxBodyBytes}
}

// NewClientWithHTTP wraps an existing client, mainly for tests.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	if httpClient == nil {
		return NewClient(0)
	}
	return &Client{httpClient: httpClient, maxBytes: maxBodyBytes}
}

// Fetch returns the body of url as text.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("feed url is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("feed request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read feed response: %w", err)
	}
	// A truncated sheet would replace the good cache, so reject it.
	if int64(len(body)) > c.maxBytes {
		return "", fmt.Errorf("feed response exceeds %d bytes", c.maxBytes)
	}
	return strings.TrimPrefix(string(body), "\ufeff"), nil
}

var _ feeds.Fetcher = (*Client)(nil)
