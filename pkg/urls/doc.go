// Package urls composes the absolute URLs handed out for dependencies.
//
// # Overview
//
// A [Spec] pairs a host-and-path string with an optional ordered list of
// query parameters. Rendering is pure string formatting:
//
//	urls.New("github.com/sfneal/dependencies").String()
//	// https://github.com/sfneal/dependencies
//
//	urls.Shields("github/last-commit/sfneal/dependencies", urls.Style("flat")).String()
//	// https://img.shields.io/github/last-commit/sfneal/dependencies?style=flat
//
// # Escaping
//
// Parameter keys and values are joined with literal "=" and "&" and are
// never escaped. Callers must pass values that are already safe to appear
// in a query string. The badge service validates its own parameters, so
// [Shields] passes unknown keys through untouched.
package urls
