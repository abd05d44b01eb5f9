// Package deps lists the dependencies a project wants badges for.
//
// # Overview
//
// A [Dependency] is a name plus a [Type] ("composer", "docker", or any
// custom string). Dependencies come from one of two places, chosen once when
// the [Source] is built:
//
//   - an explicit [Groups] mapping (from the config file or the caller)
//   - a manifest file on disk, read by a [ManifestParser]
//
// [FromConfig] implements the usual precedence: a configured mapping wins,
// and only an absent mapping falls back to the manifest. An explicitly empty
// mapping yields an empty list.
//
// # Manifests
//
// Parsers live in subpackages ([php] for composer.json, [docker] for Compose
// files); [manifests.All] lists them. A missing or unreadable manifest
// yields an empty list. A manifest that exists but cannot be parsed is an
// INVALID_MANIFEST error.
//
// # Ordering
//
// [Source.List] returns dependencies sorted by name with duplicate names
// collapsed. When the same name appears under several types, the type that
// sorts last wins.
//
// [php]: github.com/sfneal/dependencies/pkg/deps/php
// [docker]: github.com/sfneal/dependencies/pkg/deps/docker
// [manifests.All]: github.com/sfneal/dependencies/pkg/deps/manifests.All
package deps
