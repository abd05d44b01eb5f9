package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sfneal/dependencies/pkg/cache"
	"github.com/sfneal/dependencies/pkg/observability"
)

// Client provides shared HTTP functionality for remote API clients.
// It handles caching, observability hooks, and common request headers.
//
// Client performs exactly one attempt per request. It is safe for
// concurrent use as long as the injected cache is.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	headers map[string]string
	hooks   observability.Hooks
}

// NewClient creates a Client with the given cache and default headers.
// Cache keys are namespaced under prefix and entries live for ttl.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed; a nil cache
// disables caching.
func NewClient(c cache.Cache, prefix string, ttl time.Duration, headers map[string]string) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:    NewHTTPClient(),
		cache:   c,
		keyer:   cache.NewKeyer(prefix),
		ttl:     ttl,
		headers: headers,
		hooks:   observability.Hooks{}.WithDefaults(),
	}
}

// SetHTTPClient replaces the underlying *http.Client.
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.http = h
	}
}

// SetHooks replaces the client's observability hooks.
func (c *Client) SetHooks(h observability.Hooks) {
	c.hooks = h.WithDefaults()
}

// Hooks returns the client's observability hooks.
func (c *Client) Hooks() observability.Hooks { return c.hooks }

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// ClientError reports whether the status is 4xx.
func (r *Response) ClientError() bool { return r.StatusCode >= 400 && r.StatusCode < 500 }

// JSON decodes the body into v.
func (r *Response) JSON(v any) error { return json.Unmarshal(r.Body, v) }

// Err returns nil for 2xx responses and a status error otherwise.
func (r *Response) Err() error { return checkStatus(r.StatusCode) }

// Cached retrieves the value cached for requestURL into v, or executes fetch
// and caches the result. fetch should populate v; if it fails nothing is
// stored and its error is returned unchanged.
func (c *Client) Cached(ctx context.Context, requestURL string, v any, fetch func() error) error {
	key := c.keyer.APIKey(requestURL)

	data, hit, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.hooks.Cache.OnCacheError(ctx, key, err)
	case hit:
		if json.Unmarshal(data, v) == nil {
			c.hooks.Cache.OnCacheHit(ctx, key)
			return nil
		}
		c.hooks.Cache.OnCacheError(ctx, key, fmt.Errorf("decode cached entry"))
	default:
		c.hooks.Cache.OnCacheMiss(ctx, key)
	}

	if err := fetch(); err != nil {
		return err
	}

	data, err = json.Marshal(v)
	if err != nil {
		return err
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.hooks.Cache.OnCacheError(ctx, key, err)
		return nil
	}
	c.hooks.Cache.OnCacheSet(ctx, key, len(data))
	return nil
}

// Do performs an HTTP GET and returns the response whatever its status.
// Only transport failures are returned as errors.
func (c *Client) Do(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := req.URL.Host, req.URL.Path
	c.hooks.HTTP.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.hooks.HTTP.OnError(ctx, http.MethodGet, host, path, err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.hooks.HTTP.OnError(ctx, http.MethodGet, host, path, err)
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	c.hooks.HTTP.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
