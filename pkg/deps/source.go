package deps

import "os"

// Kind identifies where a Source reads its dependencies from.
type Kind string

const (
	KindExplicit Kind = "explicit"
	KindManifest Kind = "manifest"
)

// Source produces the dependency list. Its Kind is fixed at construction.
type Source struct {
	kind    Kind
	groups  Groups
	path    string
	opts    Options
	parsers []ManifestParser
}

// Explicit returns a source over the given groups. Empty or nil groups
// produce an empty list; an explicit source never consults a manifest.
func Explicit(groups Groups) *Source {
	return &Source{kind: KindExplicit, groups: groups}
}

// FromManifest returns a source that parses the manifest at path with the
// first parser supporting its filename.
func FromManifest(path string, includeDev bool, parsers ...ManifestParser) *Source {
	return &Source{
		kind:    KindManifest,
		path:    path,
		opts:    Options{IncludeDev: includeDev},
		parsers: parsers,
	}
}

// FromConfig returns an explicit source when groups is non-nil (even if
// empty) and manifest otherwise. A nil manifest yields an empty source.
func FromConfig(groups Groups, manifest *Source) *Source {
	if groups != nil || manifest == nil {
		return Explicit(groups)
	}
	return manifest
}

// Kind reports which input the source reads.
func (s *Source) Kind() Kind { return s.kind }

// Path returns the manifest path, or "" for explicit sources.
func (s *Source) Path() string { return s.path }

// List returns the dependencies sorted by name, one entry per name.
func (s *Source) List() ([]Dependency, error) {
	if s.kind == KindManifest {
		return s.listManifest()
	}
	return s.listExplicit(), nil
}

func (s *Source) listExplicit() []Dependency {
	var list []Dependency
	for _, t := range s.groups.Types() {
		for _, name := range s.groups[t] {
			list = append(list, Dependency{Name: name, Type: t})
		}
	}
	return normalize(list)
}

func (s *Source) listManifest() ([]Dependency, error) {
	parser, err := DetectManifest(s.path, s.parsers...)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Dependency{}, nil
	}

	list, err := parser.Parse(data, s.opts)
	if err != nil {
		return nil, err
	}
	return normalize(list), nil
}
