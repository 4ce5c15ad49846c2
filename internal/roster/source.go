package roster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"nathanbeddoewebdev/padron/internal/domain"
)

const httpTimeout = 30 * time.Second

// Source fetches the raw workbook bytes.
type Source interface {
	// Open returns a reader over the workbook. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)

	// String describes the source for logs and messages.
	String() string
}

// Compile-time checks.
var (
	_ Source = (*FileSource)(nil)
	_ Source = (*HTTPSource)(nil)
)

// NewSource picks a Source for location: http and https URLs are fetched
// over the network (sending token as a bearer credential when non-empty),
// anything else is treated as a local file path.
func NewSource(location, token string) Source {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location, token)
	}
	return &FileSource{Path: location}
}

// FileSource reads a workbook from the local filesystem.
type FileSource struct {
	Path string
}

// Open opens the file. Any error wraps domain.ErrSourceUnavailable.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("roster: %w: %w", domain.ErrSourceUnavailable, err)
	}
	return f, nil
}

func (s *FileSource) String() string { return s.Path }

// HTTPSource downloads a workbook published as a static asset.
type HTTPSource struct {
	URL    string
	token  string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource with a bounded request timeout.
func NewHTTPSource(url, token string) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		token:  token,
		client: &http.Client{Timeout: httpTimeout},
	}
}

// WithClient replaces the HTTP client. Intended for testing.
func (s *HTTPSource) WithClient(c *http.Client) *HTTPSource {
	s.client = c
	return s
}

// Open issues a GET for the workbook. Transport failures and non-2xx
// responses wrap domain.ErrSourceUnavailable.
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("roster: %w: %w", domain.ErrSourceUnavailable, err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("roster: %w: %w", domain.ErrSourceUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("roster: %w: GET %s returned %s", domain.ErrSourceUnavailable, s.URL, resp.Status)
	}
	return resp.Body, nil
}

func (s *HTTPSource) String() string { return s.URL }
