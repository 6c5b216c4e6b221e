package errors

import (
	"strings"
	"unicode"
)

// ValidatePath checks a user-supplied input or output path.
// Empty paths and paths carrying control characters or null bytes are rejected;
// everything else is left to the filesystem.
func ValidatePath(kind, path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidConfig, "%s path cannot be empty", kind)
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidConfig, "%s path too long (max %d characters)", kind, maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "%s path contains invalid characters", kind)
		}
	}

	return nil
}

// ValidateTileKey checks a tile provider API key before it is embedded in a
// tile URL template. Keys are opaque tokens; whitespace, quotes and URL
// delimiters would corrupt the generated script.
func ValidateTileKey(key string) error {
	if key == "" {
		return nil
	}
	if len(key) > 256 {
		return New(ErrCodeInvalidConfig, "tile API key too long (max 256 characters)")
	}
	for _, r := range key {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(`"'<>&?#{}\`, r) {
			return New(ErrCodeInvalidConfig, "tile API key contains invalid character %q", r)
		}
	}
	return nil
}

// ValidateHexColor checks a "#RGB" or "#RRGGBB" color string as accepted
// on the command line. Frame data is never validated this way: unparseable
// marker colors fall back to blue instead.
func ValidateHexColor(s string) error {
	c := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(c) != 3 && len(c) != 6 {
		return New(ErrCodeInvalidConfig, "invalid color %q (want #RGB or #RRGGBB)", s)
	}
	for _, r := range c {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return New(ErrCodeInvalidConfig, "invalid color %q (want #RGB or #RRGGBB)", s)
		}
	}
	return nil
}
