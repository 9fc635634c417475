package errors

import (
	"slices"
	"strings"
	"unicode"
)

// maxPathLength bounds file paths accepted from the command line or config.
const maxPathLength = 4096

// ValidateFilePath validates a user-supplied file path before it is opened.
//
// Validation rules:
//   - Path cannot be empty or whitespace only
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateFormat checks that format is one of allowed.
// Matching is case-sensitive.
func ValidateFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)", format, strings.Join(allowed, ", "))
}

// ValidateCount checks that n values were supplied and that n does not
// exceed max. A max of zero or less disables the upper bound.
func ValidateCount(what string, n, max int) error {
	if n == 0 {
		return New(ErrCodeNoData, "no %s given", what)
	}
	if max > 0 && n > max {
		return New(ErrCodeInvalidInput, "expected at most %d %s, got %d", max, what, n)
	}
	return nil
}
