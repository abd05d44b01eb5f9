// Package pipeline turns a dependency source into badge links.
//
// Both the CLI and the HTTP server run the same two steps:
//
//  1. List: read the dependencies from a [deps.Source]
//  2. Links: build a [badges.Set] per dependency and summarize it
//
// # Usage
//
//	runner := pipeline.NewRunner(pipeline.Options{
//	    Fetcher:   githubClient,
//	    Aliases:   cfg.GitHubAlias,
//	    Workflows: cfg.Workflows,
//	}, logger)
//	result, err := runner.Execute(ctx, source)
//
// Summaries are built concurrently, bounded by [Options.Concurrency]; the
// result keeps the source's order.
package pipeline

import (
	"time"

	"github.com/sfneal/dependencies/pkg/badges"
	"github.com/sfneal/dependencies/pkg/deps"
)

// DefaultConcurrency bounds parallel metadata lookups.
const DefaultConcurrency = 4

// Options configures a [Runner].
type Options struct {
	// Fetcher supplies repository metadata. Nil skips remote lookups.
	Fetcher badges.MetadataFetcher

	// Aliases maps vendors to GitHub accounts.
	Aliases map[string]string

	// Workflows names the CI workflows to build status badges for.
	Workflows []string

	// Concurrency bounds parallel lookups (default: DefaultConcurrency).
	Concurrency int
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	return o
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Kind is where the dependencies came from.
	Kind deps.Kind `json:"source"`

	// Links holds one entry per dependency, sorted by name.
	Links []badges.Links `json:"dependencies"`

	// Stats contains timing information.
	Stats Stats `json:"-"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Count     int
	ListTime  time.Duration
	LinksTime time.Duration
}
