package deps

import (
	"slices"
	"strings"
)

// Type tags a dependency with the ecosystem its registry links point at.
type Type string

const (
	TypeComposer Type = "composer" // Packagist package
	TypeDocker   Type = "docker"   // Docker Hub image
)

// Known reports whether t is one of the built-in types. Other values are
// custom types and get GitHub-only links.
func (t Type) Known() bool {
	return t == TypeComposer || t == TypeDocker
}

// ParseType normalizes s into a Type. Empty input maps to TypeComposer,
// the type used when a dependency is named without one.
func ParseType(s string) Type {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeComposer
	}
	return Type(s)
}

// Dependency is a named package of a given type. Two dependencies are the
// same dependency when their names are equal.
type Dependency struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Groups maps a type to the names declared under it, in declaration order.
type Groups map[Type][]string

// Types returns the group keys in sorted order.
func (g Groups) Types() []Type {
	types := make([]Type, 0, len(g))
	for t := range g {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Options configures manifest parsing.
type Options struct {
	IncludeDev bool // Include development-only requirements
}

// normalize collapses duplicate names (last one wins) and sorts by name.
func normalize(list []Dependency) []Dependency {
	byName := make(map[string]Type, len(list))
	for _, d := range list {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		byName[name] = d.Type
	}

	out := make([]Dependency, 0, len(byName))
	for name, t := range byName {
		out = append(out, Dependency{Name: name, Type: t})
	}
	slices.SortFunc(out, func(a, b Dependency) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
