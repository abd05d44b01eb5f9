package github

import (
	"regexp"
	"strings"

	errs "github.com/sfneal/dependencies/pkg/errors"
)

// Regex patterns for GitHub resource validation.
var (
	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub repo names: 1-100 alphanumeric, hyphen, underscore, or dot
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ValidateOwner validates a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return errs.New(errs.ErrCodeInvalidPackage, "owner is required")
	}
	if !validOwner.MatchString(owner) {
		return errs.New(errs.ErrCodeInvalidPackage, "invalid owner %q: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen", owner)
	}
	return nil
}

// ValidateRepo validates a GitHub repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return errs.New(errs.ErrCodeInvalidPackage, "repo is required")
	}
	if !validRepo.MatchString(repo) {
		return errs.New(errs.ErrCodeInvalidPackage, "invalid repo %q: must be 1-100 alphanumeric characters, hyphens, underscores, or dots", repo)
	}
	return nil
}

// ParseRepoRef parses an "owner/repo" string and validates both parts.
func ParseRepoRef(ref string) (owner, repo string, err error) {
	if err := errs.ValidateOwnerRepo(ref); err != nil {
		return "", "", err
	}
	owner, repo, _ = strings.Cut(ref, "/")
	if err := ValidateOwner(owner); err != nil {
		return "", "", err
	}
	if err := ValidateRepo(repo); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}
