// Package buildinfo holds the version stamped into release binaries.
//
// Release builds set the variables with -ldflags:
//
//	-X github.com/sfneal/dependencies/pkg/buildinfo.Version=v1.4.0
//	-X github.com/sfneal/dependencies/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)
//	-X github.com/sfneal/dependencies/pkg/buildinfo.Date=$(date -u +%Y-%m-%d)
//
// Local builds keep the defaults below.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template is the cobra version template, printed by --version.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}
