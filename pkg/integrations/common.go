package integrations

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the remote resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
)

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS form.
// Handles git@, git://, and git+ prefixes, and removes .git suffixes.
// Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	return strings.TrimSuffix(s, ".git")
}

var repoURLPattern = regexp.MustCompile(`^https?://(?:www\.)?github\.com/([^/]+)/([^/?#]+)/?(?:[?#].*)?$`)

// ParseOwnerRepo extracts the owner and repository from a GitHub URL in any
// form accepted by [NormalizeRepoURL], or from a bare "owner/repo".
// Returns ok=false if raw names neither.
func ParseOwnerRepo(raw string) (owner, repo string, ok bool) {
	s := NormalizeRepoURL(raw)
	if m := repoURLPattern.FindStringSubmatch(s); m != nil {
		return m[1], m[2], true
	}
	if strings.Contains(s, "://") {
		return "", "", false
	}
	owner, repo, found := strings.Cut(s, "/")
	if !found || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", false
	}
	return owner, repo, true
}
