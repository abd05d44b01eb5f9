// Package pkg provides the libraries behind the dependencies tool.
//
// # Overview
//
// dependencies turns a project's Composer packages and Docker images into
// shareable links: GitHub repositories, Packagist and Docker Hub pages,
// shields.io version, CI and last-commit badges, archive downloads and
// package URLs. Almost everything is deterministic string templating; the
// only remote call is the GitHub repository lookup, which is cached.
//
// # Architecture
//
//	dependencies.toml / composer.json / compose.yaml
//	         ↓
//	    [deps] package (dependency source, manifest parsers)
//	         ↓
//	    [badges] package (per-dependency link set)
//	         ↓
//	    [pipeline] package (bounded fan-out, Result)
//	         ↓
//	    text, JSON or HTTP output
//
// # Main Packages
//
// [urls] - Host/path plus ordered query parameters, and the shields.io
// badge builder.
//
// [deps] - Dependency types, explicit and manifest sources. Manifest parsers
// live in deps/php (composer.json) and deps/docker (Compose files).
//
// [badges] - The link set for one dependency, with GitHub owner aliasing.
//
// [integrations] - Shared HTTP client with response caching; the github
// subpackage fetches repository metadata and treats rate limiting as absence.
//
// [cache] - File, memory, Redis and null backends behind one interface.
//
// [config] - The dependencies.toml file.
//
// [pipeline] - Runs a source through the link builder.
//
// [errors] - Structured error codes shared by the CLI and HTTP server.
//
// [observability] - HTTP and cache hooks; the CLI plugs in a logger.
//
// [buildinfo] - Version information set at build time.
//
// [urls]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/urls
// [deps]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/deps
// [badges]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/badges
// [integrations]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/cache
// [config]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/errors
// [observability]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/sfneal/dependencies/pkg/buildinfo
package pkg
