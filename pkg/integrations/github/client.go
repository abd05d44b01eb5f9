package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sfneal/dependencies/pkg/cache"
	errs "github.com/sfneal/dependencies/pkg/errors"
	"github.com/sfneal/dependencies/pkg/integrations"
	"github.com/sfneal/dependencies/pkg/observability"
)

const (
	defaultBaseURL = "https://api.github.com"

	rateLimitMessage = "API rate limit exceeded"
)

// Options configures a [Client]. The zero value is an unauthenticated,
// uncached client talking to api.github.com.
type Options struct {
	// Token is a personal access token sent as "Authorization: token <PAT>".
	Token string

	// Cache stores successful responses. Nil disables caching.
	Cache cache.Cache

	// Prefix namespaces cache keys.
	Prefix string

	// TTL is how long a cached response stays fresh.
	TTL time.Duration

	// Hooks receive HTTP and cache events.
	Hooks observability.Hooks

	// BaseURL overrides the API root, mainly for tests.
	BaseURL string

	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
}

// Client fetches repository metadata from the GitHub API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client.
func NewClient(opts Options) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if opts.Token != "" {
		headers["Authorization"] = "token " + opts.Token
	}

	base := integrations.NewClient(opts.Cache, opts.Prefix, opts.TTL, headers)
	base.SetHooks(opts.Hooks)
	base.SetHTTPClient(opts.HTTPClient)

	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{Client: base, baseURL: baseURL}
}

// RepoURL returns the API URL for ownerRepo.
func (c *Client) RepoURL(ownerRepo string) string {
	return c.baseURL + "/repos/" + ownerRepo
}

// FetchRepo retrieves the metadata of the repository named "owner/repo".
//
// Every call issues one request. A rate-limited response yields (nil, nil)
// and is never cached. Otherwise a fresh cache entry for the request URL
// wins over the response just received; on a miss the response is decoded,
// stored and returned. Non-2xx responses become errors coded by status.
func (c *Client) FetchRepo(ctx context.Context, ownerRepo string) (*RepoMetadata, error) {
	if _, _, err := ParseRepoRef(ownerRepo); err != nil {
		return nil, err
	}

	reqURL := c.RepoURL(ownerRepo)
	resp, err := c.Do(ctx, reqURL, nil)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeNetwork, err, "fetch github repo %s", ownerRepo)
	}

	if isRateLimited(resp) {
		c.Hooks().HTTP.OnRateLimited(ctx, hostOf(c.baseURL), "/repos/"+ownerRepo)
		return nil, nil
	}

	var meta RepoMetadata
	err = c.Cached(ctx, reqURL, &meta, func() error {
		return decodeRepo(resp, ownerRepo, &meta)
	})
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

func decodeRepo(resp *integrations.Response, ownerRepo string, meta *RepoMetadata) error {
	if err := resp.Err(); err != nil {
		msg := apiMessage(resp)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return errs.Wrap(errs.CodeForStatus(resp.StatusCode), err, "github repo %s: %s", ownerRepo, msg)
	}
	if err := resp.JSON(meta); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode github repo %s", ownerRepo)
	}
	return nil
}

func isRateLimited(resp *integrations.Response) bool {
	return resp.ClientError() && strings.Contains(apiMessage(resp), rateLimitMessage)
}

func apiMessage(resp *integrations.Response) string {
	var e errorResponse
	if resp.JSON(&e) != nil {
		return ""
	}
	return e.Message
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	return u.Host
}
