// Package validation checks tool inputs before they reach the search and
// fetch layers. All failures are ERR_4xx validation errors with actionable
// messages.
package validation

import (
	"fmt"
	"strings"

	"github.com/appledeepdocs/appledocsmcp/internal/errors"
)

const (
	// MaxQueryLength bounds search query size.
	MaxQueryLength = 500
	// MaxNameLength bounds document name size.
	MaxNameLength = 255

	// appleDocPrefix is the only URL prefix accepted for Apple
	// documentation fetches.
	appleDocPrefix = "https://developer.apple.com/documentation/"
)

// Platforms lists the Apple platforms accepted by platform-scoped tools.
var Platforms = []string{"ios", "macos", "tvos", "watchos", "visionos"}

// Query validates a search query: non-empty after trimming and at most
// MaxQueryLength characters.
func Query(query string) error {
	if strings.TrimSpace(query) == "" {
		return errors.ValidationError(errors.ErrCodeQueryEmpty,
			"search query must not be empty")
	}
	if len(query) > MaxQueryLength {
		return errors.ValidationError(errors.ErrCodeQueryTooLong,
			fmt.Sprintf("search query exceeds %d characters", MaxQueryLength)).
			WithDetail("length", fmt.Sprintf("%d", len(query)))
	}
	return nil
}

// DocName validates a document name: non-empty, at most MaxNameLength
// characters, and free of path traversal sequences and separators.
func DocName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ValidationError(errors.ErrCodeInvalidName,
			"document name must not be empty")
	}
	if len(name) > MaxNameLength {
		return errors.ValidationError(errors.ErrCodeInvalidName,
			fmt.Sprintf("document name exceeds %d characters", MaxNameLength))
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return errors.ValidationError(errors.ErrCodeInvalidName,
			"document name must not contain path separators or '..'").
			WithDetail("name", name)
	}
	return nil
}

// AppleDocURL validates that a URL points at Apple's documentation site.
func AppleDocURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, appleDocPrefix) {
		return errors.ValidationError(errors.ErrCodeInvalidURL,
			"URL must start with "+appleDocPrefix).
			WithDetail("url", rawURL)
	}
	return nil
}

// Platform validates a platform identifier against the known Apple
// platforms. Comparison is case-insensitive; the normalized (lowercase)
// platform is returned.
func Platform(platform string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(platform))
	for _, p := range Platforms {
		if normalized == p {
			return normalized, nil
		}
	}
	return "", errors.ValidationError(errors.ErrCodeInvalidInput,
		fmt.Sprintf("unknown platform %q", platform)).
		WithSuggestion("Use one of: " + strings.Join(Platforms, ", "))
}
