// Package http provides an HTTP implementation of context7.LibraryService
// backed by the Context7 REST API.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/fwojciec/context7"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = context7.DefaultTimeout

// UserAgent is sent with every request.
const UserAgent = "context7-cli"

// RequestIDHeader carries a per-request identifier for correlating logs.
const RequestIDHeader = "X-Request-Id"

// Ensure LibraryService implements context7.LibraryService at compile time.
var _ context7.LibraryService = (*LibraryService)(nil)

// LibraryService searches libraries and fetches documentation over HTTP.
// Requests are never retried.
type LibraryService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a LibraryService.
type Option func(*LibraryService)

// WithBaseURL sets the API root. Defaults to context7.DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(s *LibraryService) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *LibraryService) {
		s.timeout = d
	}
}

// WithAPIKey sends key as a bearer token.
func WithAPIKey(key string) Option {
	return func(s *LibraryService) {
		s.apiKey = key
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables the limit.
func WithRateLimit(rps float64) Option {
	return func(s *LibraryService) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithHTTPClient replaces the underlying client. The timeout option is
// ignored when a client is supplied.
func WithHTTPClient(c *http.Client) Option {
	return func(s *LibraryService) {
		s.client = c
	}
}

// NewLibraryService creates a new HTTP-based LibraryService.
func NewLibraryService(opts ...Option) *LibraryService {
	s := &LibraryService{
		baseURL: context7.DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// Search queries the search endpoint and returns results in API order.
func (s *LibraryService) Search(ctx context.Context, query string) ([]context7.SearchResult, error) {
	u := s.baseURL + "/search?" + url.Values{"query": {query}}.Encode()

	body, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp context7.SearchResponse
	if err := sonic.ConfigStd.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if resp.Results == nil {
		resp.Results = []context7.SearchResult{}
	}
	return resp.Results, nil
}

// GetDocs fetches the documentation body for id. The body is returned as is.
func (s *LibraryService) GetDocs(ctx context.Context, id string) (string, error) {
	path := strings.TrimPrefix(id, "/")

	body, err := s.get(ctx, s.baseURL+"/"+path)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (s *LibraryService) get(ctx context.Context, u string) ([]byte, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, u)
	}

	return io.ReadAll(resp.Body)
}
