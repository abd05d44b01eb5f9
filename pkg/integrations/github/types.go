package github

// DefaultBranch is assumed when a repository's metadata is unavailable.
const DefaultBranch = "master"

// RepoMetadata is the subset of a GitHub repository the badge builder uses.
type RepoMetadata struct {
	Description   *string `json:"description"`
	DefaultBranch string  `json:"default_branch"`
}

// Branch returns the default branch, or [DefaultBranch] when m is nil or
// the branch is unknown.
func (m *RepoMetadata) Branch() string {
	if m == nil || m.DefaultBranch == "" {
		return DefaultBranch
	}
	return m.DefaultBranch
}

// GetDescription returns the description, or nil when m is nil or GitHub
// reported none.
func (m *RepoMetadata) GetDescription() *string {
	if m == nil {
		return nil
	}
	return m.Description
}

type errorResponse struct {
	Message string `json:"message"`
}
