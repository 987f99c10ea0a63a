package naming

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for fuzzy comparison: lower-cased with
// the common separators (_, -, space) stripped.
//
//   - "userName"  -> "username"
//   - "user_name" -> "username"
//   - "URL"       -> "url"
func NormalizeIdent(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// TrimAccessorPrefix strips a leading "get" or "is" from a method name.
// The "get" prefix is tried first.
func TrimAccessorPrefix(name string) string {
	if rest, ok := strings.CutPrefix(name, GetPrefix); ok {
		return rest
	}

	if rest, ok := strings.CutPrefix(name, IsPrefix); ok {
		return rest
	}

	return name
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
