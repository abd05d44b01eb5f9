package deps_test

import (
	"fmt"

	"github.com/sfneal/dependencies/pkg/deps"
)

func ExampleExplicit() {
	src := deps.Explicit(deps.Groups{
		deps.TypeDocker:   {"sfneal/php"},
		deps.TypeComposer: {"sfneal/caching", "sfneal/actions"},
	})

	list, _ := src.List()
	for _, d := range list {
		fmt.Println(d.Type, d.Name)
	}
	// Output:
	// composer sfneal/actions
	// composer sfneal/caching
	// docker sfneal/php
}

func ExampleFromConfig() {
	manifest := deps.FromManifest("composer.json", false)

	fmt.Println(deps.FromConfig(nil, manifest).Kind())
	fmt.Println(deps.FromConfig(deps.Groups{}, manifest).Kind())
	// Output:
	// manifest
	// explicit
}
