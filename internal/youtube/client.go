package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ErrMissingAPIKey indicates the client was constructed without an API key.
// It is fatal to every call on the client, not just the one that hit it first.
var ErrMissingAPIKey = errors.New("youtube: missing API key")

// UpstreamError wraps a failed YouTube Data API call with a human-readable
// operation name. The underlying googleapi.Error remains reachable via errors.As.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// upstreamErr wraps err as an *UpstreamError for the named operation.
func upstreamErr(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}

// Client wraps the YouTube API service with per-domain operation methods.
// The underlying service is constructed lazily on first use and reused for
// the lifetime of the process; it is never mutated after construction, so
// the client is safe for concurrent use.
type Client struct {
	apiKey string
	opts   []option.ClientOption

	once    sync.Once
	service *youtube.Service
	initErr error

	// httpClient serves the caption endpoints, which are not part of the
	// Data API surface. Overridable in tests.
	httpClient *http.Client
}

// NewClient creates a YouTube API client for the given API key.
// The API service itself is not built until the first operation runs.
// Extra options (endpoint overrides) are accepted for tests.
func NewClient(apiKey string, opts ...option.ClientOption) *Client {
	return &Client{
		apiKey:     apiKey,
		opts:       opts,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ensureService builds the API service exactly once. A construction failure
// is sticky: every subsequent call observes the same error.
func (c *Client) ensureService(ctx context.Context) (*youtube.Service, error) {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.initErr = ErrMissingAPIKey
			return
		}
		opts := append([]option.ClientOption{option.WithAPIKey(c.apiKey)}, c.opts...)
		service, err := youtube.NewService(ctx, opts...)
		if err != nil {
			c.initErr = fmt.Errorf("failed to create youtube service: %w", err)
			return
		}
		c.service = service
	})
	return c.service, c.initErr
}

// clampMaxResults applies the default of 20 and the API page bounds.
func clampMaxResults(n int64, max int64) int64 {
	if n <= 0 {
		return 20
	}
	if n > max {
		return max
	}
	return n
}
