// Package observability provides hooks for cache and HTTP instrumentation.
//
// Hooks let the CLI and the server attach logging or metrics to the remote
// metadata fetch without the library packages depending on a particular
// backend. Hooks are passed explicitly to the clients that emit them; there
// is no global registry.
//
// # Usage
//
//	hooks := observability.Hooks{
//	    HTTP:  myHTTPHooks{},
//	    Cache: observability.NoopCacheHooks{},
//	}
//	client := github.NewClient(c, github.Options{Hooks: hooks})
package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string, size int)

	// OnCacheError records a backend failure that was tolerated.
	OnCacheError(ctx context.Context, key string, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)

	// OnRateLimited records a response the remote API flagged as rate limited.
	OnRateLimited(ctx context.Context, host, path string)
}

// Hooks bundles the hook sets a client emits to. Zero-valued fields are
// treated as no-ops; see [Hooks.WithDefaults].
type Hooks struct {
	HTTP  HTTPHooks
	Cache CacheHooks
}

// WithDefaults returns h with nil fields replaced by no-op implementations.
func (h Hooks) WithDefaults() Hooks {
	if h.HTTP == nil {
		h.HTTP = NoopHTTPHooks{}
	}
	if h.Cache == nil {
		h.Cache = NoopCacheHooks{}
	}
	return h
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)          {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)         {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)     {}
func (NoopCacheHooks) OnCacheError(context.Context, string, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}
func (NoopHTTPHooks) OnRateLimited(context.Context, string, string)                          {}

// =============================================================================
// Logger Implementations
// =============================================================================

// LogHooks writes cache and HTTP events to a charmbracelet logger at debug
// level. Rate limiting and tolerated cache failures are logged as warnings.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns a Hooks bundle backed by logger.
func NewLogHooks(logger *log.Logger) Hooks {
	if logger == nil {
		logger = log.Default()
	}
	l := LogHooks{Logger: logger}
	return Hooks{HTTP: l, Cache: l}
}

func (h LogHooks) OnCacheHit(_ context.Context, key string) {
	h.Logger.Debug("cache hit", "key", key)
}

func (h LogHooks) OnCacheMiss(_ context.Context, key string) {
	h.Logger.Debug("cache miss", "key", key)
}

func (h LogHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.Logger.Debug("cache set", "key", key, "bytes", size)
}

func (h LogHooks) OnCacheError(_ context.Context, key string, err error) {
	h.Logger.Warn("cache error", "key", key, "err", err)
}

func (h LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.Logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h LogHooks) OnResponse(_ context.Context, method, host, path string, statusCode int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "host", host, "path", path,
		"status", statusCode, "duration", d.Round(time.Millisecond))
}

func (h LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.Logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}

func (h LogHooks) OnRateLimited(_ context.Context, host, path string) {
	h.Logger.Warn("rate limited, continuing without metadata", "host", host, "path", path)
}
