package scripturesource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/comunidad/internal/domain/scripture"
)

const (
	// DefaultDocumentURL is the Reina Valera dump published on GitHub.
	DefaultDocumentURL = "https://raw.githubusercontent.com/thiagobodruk/bible/master/json/es_rvr.json"
	defaultTimeout     = 30 * time.Second
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// HTTPSource downloads the translation document over HTTP.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource builds a source for url using its own client.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return NewHTTPSourceWithClient(url, &http.Client{Timeout: timeout})
}

// NewHTTPSourceWithClient builds a source around an existing client.
func NewHTTPSourceWithClient(url string, httpClient *http.Client) *HTTPSource {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultDocumentURL
	}
	return &HTTPSource{url: url, httpClient: httpClient}
}

// Load implements scripture.DocumentSource.
func (s *HTTPSource) Load(ctx context.Context) (scripture.Bible, error) {
	raw, err := s.Download(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// Download returns the raw document bytes.
func (s *HTTPSource) Download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build bible request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bible request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("bible request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bible response: %w", err)
	}
	return body, nil
}

// Decode parses a translation document, tolerating a leading UTF-8 BOM.
func Decode(raw []byte) (scripture.Bible, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	var bible scripture.Bible
	if err := json.Unmarshal(raw, &bible); err != nil {
		return nil, fmt.Errorf("decode bible document: %w", err)
	}
	if len(bible) == 0 {
		return nil, fmt.Errorf("decode bible document: no books")
	}
	return bible, nil
}

var _ scripture.DocumentSource = (*HTTPSource)(nil)
