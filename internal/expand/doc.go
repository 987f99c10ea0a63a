// Package expand substitutes per-member values into a line template and
// joins the expanded lines with a separator.
//
// The recognized placeholders are ${name}, ${getter}, ${type} and
// ${newline}. Substitution is literal and single pass: text introduced by a
// substituted value is never expanded again. There are no other template
// constructs.
package expand
