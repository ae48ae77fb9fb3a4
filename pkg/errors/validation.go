package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateURL validates a URL string for use in href and content attributes.
// It ensures the URL has a safe scheme (http or https) and no whitespace or
// control characters that would break out of the attribute.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme: %q", rawURL)
	}

	for _, r := range rawURL {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "URL contains whitespace or control characters: %q", rawURL)
		}
	}

	return nil
}

// configExtensions lists the configuration file extensions the loaders accept.
var configExtensions = map[string]bool{
	".toml": true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// ValidateConfigPath validates a configuration or snapshot file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .toml, .yaml, .yml or .json
func ValidateConfigPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !configExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported file extension %q (must be .toml, .yaml, .yml or .json)", ext)
	}

	return nil
}
