// Package badges builds the links shown next to each dependency: the
// GitHub repository, the registry page, shields.io badges, and the source
// archive download.
//
// # Overview
//
// A [Set] wraps one [deps.Dependency]. Every link except [Set.DownloadURL]
// and [Set.Description] is pure string templating and never fails. Those
// two need the repository's default branch and description, which come
// from an injected [MetadataFetcher] (normally a *github.Client).
//
// # GitHub Names
//
// The repository is assumed to share the dependency's name. When a vendor
// publishes under a different GitHub account, [Options.Aliases] maps the
// vendor (the segment before "/") to that account:
//
//	set := badges.New(deps.Dependency{Name: "stephenneal/helpers"}, badges.Options{
//	    Aliases: map[string]string{"stephenneal": "sfneal"},
//	})
//	set.SourceURL() // https://github.com/sfneal/helpers
//
// # Absent Metadata
//
// A nil fetcher or a rate-limited lookup means metadata is absent: the
// download link falls back to the "master" branch and the description is
// nil. Other lookup failures are returned to the caller.
package badges
