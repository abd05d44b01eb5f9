package badges

import (
	"context"

	"github.com/sfneal/dependencies/pkg/deps"
)

// Links is every link for one dependency, shaped for JSON output.
type Links struct {
	Name            string          `json:"name"`
	Type            deps.Type       `json:"type"`
	GitHub          string          `json:"github"`
	SourceURL       string          `json:"source_url"`
	RegistryURL     string          `json:"registry_url"`
	VersionBadge    string          `json:"version_badge"`
	LastCommitBadge string          `json:"last_commit_badge"`
	TravisURL       string          `json:"travis_url"`
	TravisBadge     string          `json:"travis_badge"`
	Workflows       []WorkflowBadge `json:"workflows,omitempty"`
	PURL            string          `json:"purl"`
	DownloadURL     string          `json:"download_url"`
	DefaultBranch   string          `json:"default_branch"`
	Description     *string         `json:"description"`
}

// WorkflowBadge is the status badge of one GitHub Actions workflow.
type WorkflowBadge struct {
	Name  string `json:"name"`
	Badge string `json:"badge"`
}

// Summary builds all links, fetching repository metadata once. Workflow
// badges are included for each named workflow.
func (s *Set) Summary(ctx context.Context, workflows ...string) (Links, error) {
	meta, err := s.Metadata(ctx)
	if err != nil {
		return Links{}, err
	}

	l := Links{
		Name:            s.dep.Name,
		Type:            s.dep.Type,
		GitHub:          s.gh,
		SourceURL:       s.SourceURL(),
		RegistryURL:     s.RegistryURL(),
		VersionBadge:    s.VersionBadge(),
		LastCommitBadge: s.LastCommitBadge(),
		TravisURL:       s.TravisURL(),
		TravisBadge:     s.TravisBadge(),
		PURL:            s.PURL(),
		DownloadURL:     s.downloadURL(meta),
		DefaultBranch:   meta.Branch(),
		Description:     meta.GetDescription(),
	}
	for _, w := range workflows {
		l.Workflows = append(l.Workflows, WorkflowBadge{Name: w, Badge: s.CIStatusBadge(w)})
	}
	return l, nil
}
