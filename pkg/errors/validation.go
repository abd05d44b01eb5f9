package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePackageName validates a dependency name for safety.
// It rejects names that could escape the URL path they are templated into.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - No path traversal sequences (.., //, etc.)
//   - No query or fragment delimiters (?, #, &)
//   - Maximum length of 256 characters
//
// Type-specific rules live in the Validate*Name helpers below.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", name)
		}
	}

	dangerousPatterns := []string{
		"..", // Parent directory
		"//", // Double slash
		"\\", // Backslash (Windows path)
		"?",  // Query delimiter
		"#",  // Fragment delimiter
		"&",  // Query separator
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return New(ErrCodeInvalidPackage, "package name cannot start or end with '/': %q", name)
	}

	return nil
}

// composerPackageNameRegex matches Composer's vendor/package naming rule.
var composerPackageNameRegex = regexp.MustCompile(`^[a-z0-9]([_.-]?[a-z0-9]+)*/[a-z0-9](([_.]|-{1,2})?[a-z0-9]+)*$`)

// ValidateComposerPackageName validates a Composer "vendor/package" name.
func ValidateComposerPackageName(name string) error {
	if err := ValidatePackageName(name); err != nil {
		return err
	}

	if !composerPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid composer package name: %q", name)
	}

	return nil
}

// dockerImageNameRegex matches a Docker Hub repository with an optional namespace.
var dockerImageNameRegex = regexp.MustCompile(`^([a-z0-9]+(?:[._-][a-z0-9]+)*/)?[a-z0-9]+(?:[._-][a-z0-9]+)*$`)

// ValidateDockerImageName validates a Docker Hub image name without tag.
func ValidateDockerImageName(name string) error {
	if err := ValidatePackageName(name); err != nil {
		return err
	}

	if !dockerImageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid docker image name: %q", name)
	}

	return nil
}

// ValidateOwnerRepo validates a GitHub "owner/repo" identifier.
func ValidateOwnerRepo(ownerRepo string) error {
	if err := ValidatePackageName(ownerRepo); err != nil {
		return err
	}

	owner, repo, ok := strings.Cut(ownerRepo, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return New(ErrCodeInvalidPackage, "expected owner/repo, got %q", ownerRepo)
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}
