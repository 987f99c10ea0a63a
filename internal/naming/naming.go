package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Accessor prefixes recognized by the bean convention.
const (
	GetPrefix = "get"
	IsPrefix  = "is"
)

// booleanTypes is the closed set of declared types that denote a primitive
// boolean or its boxed form, in both signature and readable spelling.
var booleanTypes = map[string]struct{}{
	"Z":                   {},
	"QBoolean;":           {},
	"Ljava.lang.Boolean;": {},
	"boolean":             {},
	"Boolean":             {},
	"java.lang.Boolean":   {},
}

// CapitalizeFirst returns s with its first character upper-cased and the
// remainder left verbatim. An empty string is returned unchanged.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}

	return string(upper) + s[size:]
}

// GetterName returns the "get" accessor name for a field.
func GetterName(field string) string {
	return GetPrefix + CapitalizeFirst(field)
}

// IsGetterName returns the "is" accessor name for a field.
func IsGetterName(field string) string {
	return IsPrefix + CapitalizeFirst(field)
}

// AccessorNames returns both accessor names for a field, "get" form first.
func AccessorNames(field string) []string {
	capitalized := CapitalizeFirst(field)

	return []string{GetPrefix + capitalized, IsPrefix + capitalized}
}

// IsAccessorCandidate reports whether a method with the given name and
// parameter count may act as an accessor.
func IsAccessorCandidate(name string, paramCount int) bool {
	if paramCount != 0 {
		return false
	}

	return strings.HasPrefix(name, GetPrefix) || strings.HasPrefix(name, IsPrefix)
}

// IsBooleanLike reports whether declaredType is a primitive boolean or the
// boxed Boolean type.
func IsBooleanLike(declaredType string) bool {
	_, ok := booleanTypes[strings.TrimSpace(declaredType)]
	return ok
}
