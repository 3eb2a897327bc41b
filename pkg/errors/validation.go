package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// courseIDRegex matches course identifiers such as "ELG2138" or "MAT1320".
var courseIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateCourseID validates a course ID supplied by a user (command-line
// argument, URL parameter, catalog file).
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - Maximum length of 64 characters
//   - Letters, digits, underscores, and hyphens only
func ValidateCourseID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "course ID cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "course ID too long (max 64 characters)")
	}
	if !courseIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid course ID: %q", id)
	}
	return nil
}

// NormalizeCourseID converts user input such as "elg 2138" into the catalog
// key form "ELG2138".
func NormalizeCourseID(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// ValidateCatalogPath validates a catalog file path and returns its format
// ("json" or "toml") derived from the extension.
func ValidateCatalogPath(path string) (string, error) {
	if path == "" {
		return "", New(ErrCodeInvalidInput, "catalog path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return "", New(ErrCodeInvalidInput, "catalog path contains invalid characters")
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".toml":
		return "toml", nil
	default:
		return "", New(ErrCodeInvalidFormat, "unsupported catalog format %q (want .json or .toml)", filepath.Ext(path))
	}
}
