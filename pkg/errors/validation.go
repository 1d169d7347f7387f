package errors

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxLabelLength bounds entity and label names; longer names cannot be laid
// out on an axis anyway.
const maxLabelLength = 256

// ValidateLabel validates an entity or label name taken from a data file.
//
// The rules:
//   - No empty or whitespace-only names
//   - Valid UTF-8, no control characters (including newlines)
//   - Maximum length of 256 bytes
func ValidateLabel(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	if len(name) > maxLabelLength {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", maxLabelLength)
	}

	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidInput, "name is not valid UTF-8: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains control characters: %q", name)
		}
	}

	return nil
}

// ValidateOutputPath validates a path the tool is about to write to.
// Absolute paths are allowed; the path must name a file, not a directory.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not end in a path separator
//   - Must not name an existing directory
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}

	return nil
}
