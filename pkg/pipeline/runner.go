package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/sfneal/dependencies/pkg/badges"
	"github.com/sfneal/dependencies/pkg/deps"
)

// Runner encapsulates pipeline execution.
// Both CLI and API use this to avoid duplicating the list/summarize logic.
//
// The Runner is stateless except for its options and logger. Multiple
// goroutines can safely use the same Runner with different sources.
type Runner struct {
	Options Options
	Logger  *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(opts Options, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Options: opts.WithDefaults(), Logger: logger}
}

// Set builds the link set for one dependency with the runner's aliases and
// fetcher.
func (r *Runner) Set(dep deps.Dependency) *badges.Set {
	return badges.New(dep, badges.Options{
		Aliases: r.Options.Aliases,
		Fetcher: r.Options.Fetcher,
	})
}

// Execute lists the source's dependencies and summarizes each one.
func (r *Runner) Execute(ctx context.Context, src *deps.Source) (*Result, error) {
	result := &Result{Kind: src.Kind()}

	listStart := time.Now()
	list, err := src.List()
	if err != nil {
		return nil, fmt.Errorf("list dependencies: %w", err)
	}
	result.Stats.Count = len(list)
	result.Stats.ListTime = time.Since(listStart)

	r.Logger.Info("listed dependencies",
		"source", src.Kind(),
		"path", src.Path(),
		"count", len(list),
		"duration", result.Stats.ListTime)

	linksStart := time.Now()
	links, err := r.Links(ctx, list)
	if err != nil {
		return nil, err
	}
	result.Links = links
	result.Stats.LinksTime = time.Since(linksStart)

	r.Logger.Info("built links",
		"count", len(links),
		"workflows", len(r.Options.Workflows),
		"duration", result.Stats.LinksTime)

	return result, nil
}

// Links summarizes each dependency, preserving order. The first lookup
// failure cancels the remaining ones and is returned.
func (r *Runner) Links(ctx context.Context, list []deps.Dependency) ([]badges.Links, error) {
	out := make([]badges.Links, len(list))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Options.Concurrency)
	for i, dep := range list {
		g.Go(func() error {
			l, err := r.Summary(gctx, dep)
			if err != nil {
				return err
			}
			out[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary builds the links for a single dependency.
func (r *Runner) Summary(ctx context.Context, dep deps.Dependency) (badges.Links, error) {
	r.Logger.Debug("summarizing", "name", dep.Name, "type", dep.Type)
	l, err := r.Set(dep).Summary(ctx, r.Options.Workflows...)
	if err != nil {
		return badges.Links{}, fmt.Errorf("%s: %w", dep.Name, err)
	}
	return l, nil
}
