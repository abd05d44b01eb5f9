// Package php parses Composer manifests.
package php

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/sfneal/dependencies/pkg/deps"
	errs "github.com/sfneal/dependencies/pkg/errors"
)

// ComposerJSON parses composer.json files. It lists the packages under
// "require", and "require-dev" when development requirements are included.
// Platform requirements (php, extensions, libraries, Composer itself) are
// skipped.
type ComposerJSON struct{}

func (ComposerJSON) Type() string              { return "composer.json" }
func (ComposerJSON) Supports(name string) bool { return strings.EqualFold(name, "composer.json") }

func (c ComposerJSON) Parse(data []byte, opts deps.Options) ([]deps.Dependency, error) {
	var comp composerFile
	if err := json.Unmarshal(data, &comp); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "parse composer.json")
	}

	names := requirementNames(comp.Require)
	if opts.IncludeDev {
		names = append(names, requirementNames(comp.RequireDev)...)
	}

	out := make([]deps.Dependency, 0, len(names))
	for _, name := range names {
		out = append(out, deps.Dependency{Name: name, Type: deps.TypeComposer})
	}
	return out, nil
}

func requirementNames(req map[string]string) []string {
	var names []string
	for name := range req {
		if isPlatformRequirement(name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var platformPackages = map[string]bool{
	"php":                  true,
	"composer":             true,
	"composer-plugin-api":  true,
	"composer-runtime-api": true,
}

func isPlatformRequirement(name string) bool {
	name = strings.ToLower(name)
	if strings.Contains(name, "/") {
		return false
	}
	return platformPackages[name] ||
		strings.HasPrefix(name, "php-") ||
		strings.HasPrefix(name, "ext-") ||
		strings.HasPrefix(name, "lib-")
}

type composerFile struct {
	Name       string            `json:"name"`
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}
