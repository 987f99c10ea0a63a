package variable

import (
	"fmt"
	"strings"

	"member-template/internal/expand"
	"member-template/internal/resolve"
)

// Variant selects which members are resolved and how parameters are read.
type Variant int

const (
	VariantUnknown Variant = iota
	// BeanFieldsNewline takes template, separator and a newline flag.
	BeanFieldsNewline
	// BeanFields takes template and separator; the separator may use ${newline}.
	BeanFields
	// Fields takes template and separator over every field and its type.
	Fields
)

// Variable names as used in editor templates.
const (
	NameBeanFieldsNewline = "enclosing_bean_fields"
	NameBeanFields        = "enclosed_bean_fields"
	NameFields            = "enclosed_fields"
)

var variantNames = map[string]Variant{
	NameBeanFieldsNewline: BeanFieldsNewline,
	NameBeanFields:        BeanFields,
	NameFields:            Fields,
	"bean-newline":        BeanFieldsNewline,
	"bean":                BeanFields,
	"fields":              Fields,
}

// Variants lists every known variant.
func Variants() []Variant {
	return []Variant{BeanFieldsNewline, BeanFields, Fields}
}

// ParseVariant looks up a variant by variable name or short alias.
func ParseVariant(name string) (Variant, error) {
	v, ok := variantNames[strings.TrimSpace(name)]
	if !ok {
		return VariantUnknown, fmt.Errorf("unknown template variable %q", name)
	}

	return v, nil
}

// String returns the variable name of the variant.
func (v Variant) String() string {
	switch v {
	case BeanFieldsNewline:
		return NameBeanFieldsNewline
	case BeanFields:
		return NameBeanFields
	case Fields:
		return NameFields
	default:
		return "unknown"
	}
}

// Arity is the exact number of parameters the variant accepts.
func (v Variant) Arity() int {
	switch v {
	case BeanFieldsNewline:
		return 3
	case BeanFields, Fields:
		return 2
	default:
		return -1
	}
}

// Placeholders lists the placeholders the variant fills in templates.
func (v Variant) Placeholders() []string {
	switch v {
	case BeanFieldsNewline:
		return []string{expand.NamePlaceholder, expand.GetterPlaceholder}
	case BeanFields:
		return []string{expand.NamePlaceholder, expand.GetterPlaceholder, expand.NewlinePlaceholder}
	case Fields:
		return []string{expand.TypePlaceholder, expand.NamePlaceholder, expand.NewlinePlaceholder}
	default:
		return nil
	}
}

// Strategy returns the member resolution strategy of the variant.
func (v Variant) Strategy() resolve.Strategy {
	if v == Fields {
		return resolve.FieldTypeStrategy
	}

	return resolve.BeanStrategy
}

func (v Variant) substitution() expand.Substitution {
	if v == Fields {
		return expand.FieldTypeSubstitution
	}

	return expand.BeanSubstitution
}

// separator reads the effective separator from already arity-checked params.
func (v Variant) separator(params []string, lineSep string) string {
	if v == BeanFieldsNewline {
		return expand.ForcedNewlineSeparator(params[1], expand.ParseForceNewline(params[2]), lineSep)
	}

	return expand.NewlineSeparator(params[1], lineSep)
}
