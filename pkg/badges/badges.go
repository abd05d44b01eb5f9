package badges

import (
	"context"
	"strings"

	"github.com/package-url/packageurl-go"

	"github.com/sfneal/dependencies/pkg/deps"
	errs "github.com/sfneal/dependencies/pkg/errors"
	"github.com/sfneal/dependencies/pkg/integrations/github"
	"github.com/sfneal/dependencies/pkg/urls"
)

const (
	githubHost    = "github.com"
	packagistHost = "packagist.org"
	dockerHubHost = "hub.docker.com"
	travisHost    = "travis-ci.com"

	travisBranch = "master"
)

// MetadataFetcher looks up repository metadata. A nil result with a nil
// error means the metadata is unavailable.
type MetadataFetcher interface {
	FetchRepo(ctx context.Context, ownerRepo string) (*github.RepoMetadata, error)
}

// Options configures a [Set].
type Options struct {
	// Aliases maps a vendor name to the GitHub account that hosts its
	// repositories.
	Aliases map[string]string

	// Fetcher supplies repository metadata. Nil treats metadata as absent.
	Fetcher MetadataFetcher
}

// Set builds every link for one dependency.
type Set struct {
	dep     deps.Dependency
	gh      string
	fetcher MetadataFetcher
}

// New creates the link set for dep.
func New(dep deps.Dependency, opts Options) *Set {
	return &Set{
		dep:     dep,
		gh:      githubName(dep.Name, opts.Aliases),
		fetcher: opts.Fetcher,
	}
}

func githubName(name string, aliases map[string]string) string {
	owner, repo, found := strings.Cut(name, "/")
	if alias, ok := aliases[owner]; ok && alias != "" {
		owner = alias
	}
	if !found {
		return owner
	}
	return owner + "/" + repo
}

// Dependency returns the dependency the set was built for.
func (s *Set) Dependency() deps.Dependency { return s.dep }

// Validate checks the dependency name against its type's naming rules.
func (s *Set) Validate() error {
	switch s.dep.Type {
	case deps.TypeComposer:
		return errs.ValidateComposerPackageName(s.dep.Name)
	case deps.TypeDocker:
		return errs.ValidateDockerImageName(s.dep.Name)
	default:
		return errs.ValidateOwnerRepo(s.gh)
	}
}

// GitHubName returns the "owner/repo" of the dependency's repository with
// vendor aliases applied.
func (s *Set) GitHubName() string { return s.gh }

// Source returns the GitHub repository page.
func (s *Set) Source() urls.Spec {
	return urls.New(githubHost + "/" + s.gh)
}

// SourceURL renders [Set.Source].
func (s *Set) SourceURL() string { return s.Source().String() }

// Registry returns the package's registry page: Packagist for composer
// packages, Docker Hub for images, and the GitHub repository otherwise.
func (s *Set) Registry() urls.Spec {
	switch s.dep.Type {
	case deps.TypeComposer:
		return urls.New(packagistHost + "/packages/" + s.dep.Name)
	case deps.TypeDocker:
		return urls.New(dockerHubHost + "/r/" + s.dep.Name)
	default:
		return s.Source()
	}
}

// RegistryURL renders [Set.Registry].
func (s *Set) RegistryURL() string { return s.Registry().String() }

// VersionBadge returns the latest-version badge from the package's registry,
// or the latest GitHub release for custom types.
func (s *Set) VersionBadge() string {
	switch s.dep.Type {
	case deps.TypeComposer:
		return urls.Shields("packagist/v/" + s.dep.Name + ".svg").String()
	case deps.TypeDocker:
		return urls.Shields("docker/v/"+s.dep.Name+".svg", urls.Sort("semver")).String()
	default:
		return urls.Shields("github/v/release/" + s.gh + ".svg").String()
	}
}

// CIStatusBadge returns the GitHub Actions status badge for the named
// workflow, labelled with the workflow name.
func (s *Set) CIStatusBadge(workflow string) string {
	return urls.Shields("github/workflow/status/"+s.gh+"/"+workflow,
		urls.Logo("github"),
		urls.Style(urls.StyleForTheBadge),
		urls.Label(workflow),
	).String()
}

// LastCommitBadge returns the repository's last-commit badge.
func (s *Set) LastCommitBadge() string {
	return urls.Shields("github/last-commit/" + s.gh).String()
}

// TravisURL returns the repository's Travis CI page.
func (s *Set) TravisURL() string {
	return urls.New(travisHost + "/" + s.gh).String()
}

// TravisBadge returns the Travis CI build badge for the master branch.
func (s *Set) TravisBadge() string {
	return urls.New(travisHost+"/"+s.gh+".svg", urls.P("branch", travisBranch)).String()
}

// PURL returns the package URL identifying the dependency.
func (s *Set) PURL() string {
	purlType, name := packageurl.TypeGithub, s.gh
	switch s.dep.Type {
	case deps.TypeComposer:
		purlType, name = packageurl.TypeComposer, s.dep.Name
	case deps.TypeDocker:
		purlType, name = packageurl.TypeDocker, s.dep.Name
	}

	namespace := ""
	if i := strings.LastIndex(name, "/"); i >= 0 {
		namespace, name = name[:i], name[i+1:]
	}
	return packageurl.NewPackageURL(purlType, namespace, name, "", nil, "").ToString()
}

// Metadata fetches the repository metadata. It returns (nil, nil) when no
// fetcher is configured, the lookup was rate limited, or the name does not
// map to a GitHub repository (official images such as "nginx").
func (s *Set) Metadata(ctx context.Context) (*github.RepoMetadata, error) {
	if s.fetcher == nil {
		return nil, nil
	}
	if _, _, err := github.ParseRepoRef(s.gh); err != nil {
		return nil, nil
	}
	return s.fetcher.FetchRepo(ctx, s.gh)
}

// DownloadURL returns the zip archive of the repository's default branch.
func (s *Set) DownloadURL(ctx context.Context) (string, error) {
	meta, err := s.Metadata(ctx)
	if err != nil {
		return "", err
	}
	return s.downloadURL(meta), nil
}

func (s *Set) downloadURL(meta *github.RepoMetadata) string {
	return urls.New(githubHost + "/" + s.gh + "/archive/refs/heads/" + meta.Branch() + ".zip").String()
}

// Description returns the repository description, or nil when GitHub has
// none or metadata is unavailable.
func (s *Set) Description(ctx context.Context) (*string, error) {
	meta, err := s.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	return meta.GetDescription(), nil
}
