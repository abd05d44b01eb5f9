// Package docker parses Docker Compose files.
package docker

import (
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sfneal/dependencies/pkg/deps"
	errs "github.com/sfneal/dependencies/pkg/errors"
)

var composeFilenames = []string{
	"compose.yaml",
	"compose.yml",
	"docker-compose.yaml",
	"docker-compose.yml",
}

// Compose parses Compose files. Every service with an "image" becomes a
// docker dependency named after the image repository, without tag or digest.
// Services that only declare a build context are skipped.
type Compose struct{}

func (Compose) Type() string { return "compose" }

func (Compose) Supports(name string) bool {
	return slices.Contains(composeFilenames, strings.ToLower(name))
}

func (Compose) Parse(data []byte, _ deps.Options) ([]deps.Dependency, error) {
	var f composeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "parse compose file")
	}

	var out []deps.Dependency
	for _, svc := range f.Services {
		name := ImageName(svc.Image)
		if name == "" {
			continue
		}
		out = append(out, deps.Dependency{Name: name, Type: deps.TypeDocker})
	}
	return out, nil
}

// ImageName strips the tag and digest from a Docker image reference and
// drops the implicit "library/" namespace and docker.io registry.
//
//	ImageName("sfneal/php-laravel:8.0@sha256:abc") == "sfneal/php-laravel"
//	ImageName("docker.io/library/nginx:1.25") == "nginx"
func ImageName(ref string) string {
	ref = strings.TrimSpace(ref)
	if i := strings.Index(ref, "@"); i >= 0 {
		ref = ref[:i]
	}
	// A colon after the last slash separates the tag; one before it is a
	// registry port.
	if i := strings.LastIndex(ref, ":"); i > strings.LastIndex(ref, "/") {
		ref = ref[:i]
	}
	ref = strings.TrimPrefix(ref, "docker.io/")
	ref = strings.TrimPrefix(ref, "index.docker.io/")
	ref = strings.TrimPrefix(ref, "library/")
	return ref
}

type composeFile struct {
	Services map[string]struct {
		Image string `yaml:"image"`
	} `yaml:"services"`
}
