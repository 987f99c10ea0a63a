// Package variable exposes member templates as template variables: a named
// variant, a type reference, and positional parameters go in, expanded text
// (or a not-applicable outcome) comes out.
//
// Variants:
//
//	enclosing_bean_fields(template, separator, newline)  ${name}, ${getter}; newline is "true" to prefix the separator with a line break
//	enclosed_bean_fields(template, separator)            ${name}, ${getter}; separator may use ${newline}
//	enclosed_fields(template, separator)                 ${type}, ${name}; separator may use ${newline}
//
// Each call walks START -> VALIDATE_ARITY -> NOT_APPLICABLE, or
// START -> VALIDATE_ARITY -> RESOLVE_MEMBERS -> EXPAND -> DONE. Nothing is
// kept between calls, so a Resolver may be shared between goroutines.
package variable
