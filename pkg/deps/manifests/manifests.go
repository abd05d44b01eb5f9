// Package manifests provides the complete list of supported manifest parsers.
//
// This package exists to break import cycles: the parser packages (php,
// docker) import pkg/deps, so pkg/deps cannot import them back. Consumers
// that need the full list import this package instead.
package manifests

import (
	"github.com/sfneal/dependencies/pkg/deps"
	"github.com/sfneal/dependencies/pkg/deps/docker"
	"github.com/sfneal/dependencies/pkg/deps/php"
)

// DefaultPath is the manifest read when none is configured.
const DefaultPath = "composer.json"

// All is the canonical list of manifest parsers, in detection order.
var All = []deps.ManifestParser{
	php.ComposerJSON{},
	docker.Compose{},
}

// Source returns a manifest source for path using every known parser.
func Source(path string, includeDev bool) *deps.Source {
	if path == "" {
		path = DefaultPath
	}
	return deps.FromManifest(path, includeDev, All...)
}
