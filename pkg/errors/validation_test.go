package errors

import "testing"

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid composer", "sfneal/laravel-helpers", false},
		{"valid docker", "stephenneal/nginx-laravel", false},
		{"single segment", "nginx", false},
		{"empty", "", true},
		{"too long", string(make([]byte, 257)), true},
		{"control char", "foo\x00bar", true},
		{"whitespace", "foo bar", true},
		{"path traversal", "../etc/passwd", true},
		{"double slash", "foo//bar", true},
		{"backslash", "foo\\bar", true},
		{"query", "foo/bar?x=1", true},
		{"fragment", "foo/bar#x", true},
		{"leading slash", "/foo/bar", true},
		{"trailing slash", "foo/bar/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPackage) {
				t.Errorf("error should carry ErrCodeInvalidPackage, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateComposerPackageName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"sfneal/dependencies", false},
		{"symfony/console", false},
		{"spatie/laravel-view-models", false},
		{"vendor/some_pkg.name", false},
		{"php", true},
		{"ext-json", true},
		{"Vendor/Package", true},
		{"vendor/pkg/extra", true},
	}

	for _, tt := range tests {
		err := ValidateComposerPackageName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateComposerPackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateDockerImageName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"nginx", false},
		{"library/nginx", false},
		{"stephenneal/php-laravel", false},
		{"my.org/my_image", false},
		{"UPPER/case", true},
		{"a/b/c", true},
		{"nginx:latest", true},
	}

	for _, tt := range tests {
		err := ValidateDockerImageName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDockerImageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateOwnerRepo(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"sfneal/dependencies", false},
		{"Owner/Repo.go", false},
		{"noslash", true},
		{"a/b/c", true},
		{"/repo", true},
		{"owner/", true},
	}

	for _, tt := range tests {
		err := ValidateOwnerRepo(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOwnerRepo(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateManifestFilename(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"composer.json", false},
		{"docker-compose.yml", false},
		{"", true},
		{"sub/composer.json", true},
		{".env", true},
	}

	for _, tt := range tests {
		err := ValidateManifestFilename(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateManifestFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput, ErrCodeInvalidPackage, ErrCodeInvalidManifest,
		ErrCodeInvalidFormat, ErrCodeInvalidConfig, ErrCodeNotFound,
		ErrCodeNetwork, ErrCodeRateLimited, ErrCodeUnauthorized, ErrCodeInternal,
	}
	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate error code: %s", c)
		}
		seen[c] = true
	}
}
