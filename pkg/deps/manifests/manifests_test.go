package manifests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sfneal/dependencies/pkg/deps"
)

func TestSource(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"composer.json":      `{"require":{"php":"^8.0","sfneal/caching":"^2.0"}}`,
		"docker-compose.yml": "services:\n  app:\n    image: sfneal/php:8.0\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		file string
		want deps.Dependency
	}{
		{"composer.json", deps.Dependency{Name: "sfneal/caching", Type: deps.TypeComposer}},
		{"docker-compose.yml", deps.Dependency{Name: "sfneal/php", Type: deps.TypeDocker}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			src := Source(filepath.Join(dir, tt.file), false)
			got, err := src.List()
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("List() = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestSourceDefaultPath(t *testing.T) {
	if got := Source("", false).Path(); got != DefaultPath {
		t.Errorf("Path() = %q, want %q", got, DefaultPath)
	}
}
