// Package resolve pairs a type's declared fields with the values substituted
// into member templates.
//
// Two strategies are provided. BeanStrategy keeps only fields readable
// through a bean accessor ("getX()", or "isX()" for booleans) and maps them
// to the accessor call. FieldTypeStrategy keeps every field and maps it to
// the simple name of its declared type. Resolve runs a strategy against a
// model.TypeModel and fails whole when the model cannot list members.
package resolve
