// Package github fetches repository metadata from the GitHub API.
//
// # Overview
//
// The badge builder needs two facts about a dependency's repository that
// cannot be derived from its name: the default branch (for the source
// archive download link) and the description. [Client.FetchRepo] retrieves
// both from https://api.github.com/repos/{owner}/{repo}.
//
// # Usage
//
//	client := github.NewClient(github.Options{
//	    Token: os.Getenv("GITHUB_TOKEN"),
//	    Cache: c,
//	    TTL:   24 * time.Hour,
//	})
//
//	meta, err := client.FetchRepo(ctx, "sfneal/dependencies")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(meta.Branch()) // "master" when meta is nil
//
// # Authentication
//
// A personal access token is sent as "Authorization: token <PAT>". Without
// one the API allows 60 requests per hour.
//
// # Rate Limiting
//
// When GitHub answers with a client error whose message contains
// "API rate limit exceeded", FetchRepo returns (nil, nil): the metadata is
// treated as absent, nothing is cached, and callers fall back to defaults.
// All other failures are returned as [errors.Error] values.
//
// # Caching
//
// Successful responses are cached under "<prefix>:api-responses:<hash>",
// where hash is the SHA-256 of the request URL, for the configured TTL.
//
// [errors.Error]: github.com/sfneal/dependencies/pkg/errors.Error
package github
