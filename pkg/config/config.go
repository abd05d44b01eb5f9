// Package config loads the dependencies.toml configuration file.
//
// # File Format
//
//	github_token = "ghp_..."          # optional, GITHUB_TOKEN overrides
//	github_api   = ""                 # API root, defaults to https://api.github.com
//	workflows    = ["Tests"]          # CI badges to include per dependency
//	manifest     = "composer.json"    # read when [dependencies] is absent
//	include_dev  = false
//
//	[github_alias]
//	stephenneal = "sfneal"
//
//	[cache]
//	prefix     = "dependencies"
//	ttl        = "24h"
//	backend    = "file"               # file, redis or none
//	dir        = ""                   # defaults to the user cache directory
//	redis_addr = "localhost:6379"
//
//	[dependencies]
//	composer = ["sfneal/caching", "sfneal/actions"]
//	docker   = ["sfneal/php"]
//
// A missing file is not an error: [Load] returns [Default]. Leaving out the
// [dependencies] table makes the manifest the dependency source; an empty
// table means "no dependencies".
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sfneal/dependencies/pkg/cache"
	"github.com/sfneal/dependencies/pkg/deps"
	errs "github.com/sfneal/dependencies/pkg/errors"
)

// Defaults applied by [Default] and [Load].
const (
	DefaultPath        = "dependencies.toml"
	DefaultCachePrefix = "dependencies"
	DefaultCacheTTL    = 24 * time.Hour
	DefaultBackend     = cache.BackendFile

	// TokenEnv names the environment variable that overrides github_token.
	TokenEnv = "GITHUB_TOKEN"
)

// Config is the parsed configuration file.
type Config struct {
	GitHubToken  string              `toml:"github_token"`
	GitHubAPI    string              `toml:"github_api"`
	GitHubAlias  map[string]string   `toml:"github_alias"`
	Workflows    []string            `toml:"workflows"`
	Manifest     string              `toml:"manifest"`
	IncludeDev   bool                `toml:"include_dev"`
	Cache        CacheConfig         `toml:"cache"`
	Dependencies map[string][]string `toml:"dependencies"`
}

// CacheConfig configures the response cache.
type CacheConfig struct {
	Prefix        string        `toml:"prefix"`
	TTL           time.Duration `toml:"ttl"`
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			Prefix:  DefaultCachePrefix,
			TTL:     DefaultCacheTTL,
			Backend: DefaultBackend,
		},
	}
}

// Load reads the file at path, applies defaults for unset values and the
// GITHUB_TOKEN override, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	}

	cfg.applyDefaults()
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = DefaultCachePrefix
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = DefaultBackend
	}
}

// ApplyEnv overrides the token from the environment when set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if tok := strings.TrimSpace(getenv(TokenEnv)); tok != "" {
		c.GitHubToken = tok
	}
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if c.Cache.TTL < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendNone:
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unknown cache.backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.GitHubAPI != "" && !strings.HasPrefix(c.GitHubAPI, "http://") && !strings.HasPrefix(c.GitHubAPI, "https://") {
		return errs.New(errs.ErrCodeInvalidConfig, "github_api must be an http(s) URL, got %q", c.GitHubAPI)
	}
	for vendor, account := range c.GitHubAlias {
		if vendor == "" || account == "" || strings.Contains(vendor+account, "/") {
			return errs.New(errs.ErrCodeInvalidConfig, "github_alias entries must map a vendor to an account: %q = %q", vendor, account)
		}
	}
	for t := range c.Dependencies {
		if strings.TrimSpace(t) == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "dependencies: empty type name")
		}
	}
	return nil
}

// Groups returns the configured dependencies, or nil when the
// [dependencies] table is absent.
func (c *Config) Groups() deps.Groups {
	if c.Dependencies == nil {
		return nil
	}
	g := make(deps.Groups, len(c.Dependencies))
	for t, names := range c.Dependencies {
		g[deps.ParseType(t)] = append(g[deps.ParseType(t)], names...)
	}
	return g
}

// CacheOptions converts the cache section for [cache.Open]. dir is used
// when the file leaves cache.dir empty.
func (c *Config) CacheOptions(dir string) cache.Options {
	if c.Cache.Dir != "" {
		dir = c.Cache.Dir
	}
	return cache.Options{
		Backend: c.Cache.Backend,
		Dir:     dir,
		Redis: cache.RedisConfig{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
		},
	}
}
