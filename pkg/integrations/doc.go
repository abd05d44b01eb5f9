// Package integrations provides the HTTP plumbing shared by remote API clients.
//
// # Overview
//
// The only remote lookup this module performs is GitHub repository metadata
// (see the [github] subpackage). The [Client] type here holds everything
// that is not GitHub-specific:
//
//   - default request headers (authorization, Accept)
//   - a single GET per call with a fixed timeout and no retries
//   - response caching through an injected [cache.Cache] and [cache.Keyer]
//   - observability hooks for requests and cache events
//
// # Caching
//
// [Client.Cached] is a get-or-fetch helper: on a hit the stored JSON is
// decoded into v; on a miss fetch populates v and the result is stored with
// the client's TTL. Cache backend failures are reported to hooks and treated
// as misses so a broken cache never fails a lookup.
//
// # Repository URLs
//
// [NormalizeRepoURL] and [ParseOwnerRepo] turn the various ways a GitHub
// repository can be written (git@, git://, git+https, .git suffix, bare
// owner/repo) into a canonical owner and repository name.
//
// [github]: github.com/sfneal/dependencies/pkg/integrations/github
package integrations
