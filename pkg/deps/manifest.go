package deps

import (
	"path/filepath"

	errs "github.com/sfneal/dependencies/pkg/errors"
)

// ManifestParser reads dependencies from a manifest file's contents.
type ManifestParser interface {
	// Parse decodes the manifest. Malformed input returns an
	// INVALID_MANIFEST error.
	Parse(data []byte, opts Options) ([]Dependency, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g., "composer.json").
	Type() string
}

// DetectManifest finds a parser that supports the given file path.
// Returns an INVALID_MANIFEST error if no parser matches.
func DetectManifest(path string, parsers ...ManifestParser) (ManifestParser, error) {
	name := filepath.Base(path)
	if err := errs.ValidateManifestFilename(name); err != nil {
		return nil, err
	}
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errs.New(errs.ErrCodeInvalidManifest, "unsupported manifest: %s", name)
}
