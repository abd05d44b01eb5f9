// Package cli implements the dependencies command-line interface.
//
// # Commands
//
//   - list: print badge links for every configured dependency
//   - show: print badge links for one dependency
//   - serve: expose the links over HTTP
//   - cache: manage the GitHub response cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces GitHub requests and cache hits.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sfneal/dependencies/pkg/buildinfo"
	"github.com/sfneal/dependencies/pkg/cache"
	"github.com/sfneal/dependencies/pkg/config"
	"github.com/sfneal/dependencies/pkg/deps"
	"github.com/sfneal/dependencies/pkg/deps/manifests"
	"github.com/sfneal/dependencies/pkg/integrations/github"
	"github.com/sfneal/dependencies/pkg/observability"
	"github.com/sfneal/dependencies/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dependencies"

	formatText = "text"
	formatJSON = "json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Badge and repository links for your project's dependencies",
		Long:         `dependencies lists a project's Composer packages and Docker images with links to their GitHub repositories, registry pages, CI status and version badges.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultPath, "configuration file")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the GitHub response cache")

	// Register all subcommands
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// session is everything a command needs to build links.
type session struct {
	cfg    *config.Config
	cache  cache.Cache
	runner *pipeline.Runner
	logger *log.Logger
}

func (s *session) Close() error { return s.cache.Close() }

// newSession loads the config and wires cache, GitHub client and runner.
// extraWorkflows are appended to the configured ones.
func (c *CLI) newSession(ctx context.Context, extraWorkflows []string) (*session, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "backend", cfg.Cache.Backend)

	rc, err := c.openCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(github.Options{
		Token:   cfg.GitHubToken,
		Cache:   rc,
		Prefix:  cfg.Cache.Prefix,
		TTL:     cfg.Cache.TTL,
		Hooks:   observability.NewLogHooks(c.Logger),
		BaseURL: cfg.GitHubAPI,
	})

	runner := pipeline.NewRunner(pipeline.Options{
		Fetcher:   client,
		Aliases:   cfg.GitHubAlias,
		Workflows: append(append([]string{}, cfg.Workflows...), extraWorkflows...),
	}, c.Logger)

	return &session{cfg: cfg, cache: rc, runner: runner, logger: c.Logger}, nil
}

func (c *CLI) openCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil && cfg.Cache.Dir == "" && cfg.Cache.Backend == cache.BackendFile {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.Open(ctx, cfg.CacheOptions(dir))
}

// source resolves the dependency source: configured groups win over the
// manifest. An empty manifest path uses the configured one.
func (s *session) source(manifest string, includeDev bool) *deps.Source {
	if manifest != "" && s.cfg.Groups() != nil {
		s.logger.Warn("ignoring --manifest, [dependencies] is configured", "manifest", manifest)
	}
	if manifest == "" {
		manifest = s.cfg.Manifest
	}
	return deps.FromConfig(s.cfg.Groups(), manifests.Source(manifest, includeDev || s.cfg.IncludeDev))
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/dependencies/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// resolvedCacheDir returns the configured cache directory or the XDG default.
func resolvedCacheDir(cfg *config.Config) (string, error) {
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cacheDir()
}
