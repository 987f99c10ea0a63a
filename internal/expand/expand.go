package expand

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"member-template/internal/resolve"
)

// Placeholders recognized in templates and separators.
const (
	NamePlaceholder    = "${name}"
	GetterPlaceholder  = "${getter}"
	TypePlaceholder    = "${type}"
	NewlinePlaceholder = "${newline}"
)

// ErrNotApplicable reports parameters that do not fit the requested form.
// Callers fall back to their default behavior; it is not a failure.
var ErrNotApplicable = errors.New("parameters not applicable")

// Substitution returns the placeholder/value pairs for one entry, in the
// old, new, old, new order taken by strings.NewReplacer.
type Substitution func(e resolve.Entry) []string

// BeanSubstitution fills ${name} with the field name and ${getter} with the
// accessor call.
func BeanSubstitution(e resolve.Entry) []string {
	return []string{NamePlaceholder, e.Name, GetterPlaceholder, e.Value}
}

// FieldTypeSubstitution fills ${type} with the simple type name and ${name}
// with the field name.
func FieldTypeSubstitution(e resolve.Entry) []string {
	return []string{TypePlaceholder, e.Value, NamePlaceholder, e.Name}
}

// Expand produces one line per entry from template and joins them with
// separator. The separator is used as given.
func Expand(template, separator string, entries resolve.Mapping, sub Substitution) string {
	lines := make([]string, 0, len(entries))

	for _, e := range entries {
		lines = append(lines, strings.NewReplacer(sub(e)...).Replace(template))
	}

	return strings.Join(lines, separator)
}

// PlatformLineSeparator returns the line separator of the running platform.
func PlatformLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}

	return "\n"
}

// NewlineSeparator replaces every ${newline} in separator with lineSep.
func NewlineSeparator(separator, lineSep string) string {
	return strings.ReplaceAll(separator, NewlinePlaceholder, lineSep)
}

// ForcedNewlineSeparator prefixes separator with lineSep when force is set.
func ForcedNewlineSeparator(separator string, force bool, lineSep string) string {
	if force {
		return lineSep + separator
	}

	return separator
}

// ParseForceNewline reads a newline flag parameter. Only "true", in any
// letter case, enables it.
func ParseForceNewline(s string) bool {
	return strings.EqualFold(s, "true")
}

// CheckArity returns an ErrNotApplicable error unless exactly want
// parameters were supplied.
func CheckArity(params []string, want int) error {
	if len(params) != want {
		return fmt.Errorf("%w: got %d parameters, want %d", ErrNotApplicable, len(params), want)
	}

	return nil
}

// Result is the outcome of resolving a template. When Applicable is false
// Text is empty and the caller should use its own fallback.
type Result struct {
	Text       string
	Applicable bool
}

// Applied returns an applicable Result holding text.
func Applied(text string) Result {
	return Result{Text: text, Applicable: true}
}

// NotApplicable returns the Result for parameters that do not fit.
func NotApplicable() Result {
	return Result{}
}
