// Package naming holds the bean-style naming rules used to pair fields with
// their accessor methods.
//
// Key functions:
//   - CapitalizeFirst: upper-cases the first character of an identifier
//   - GetterName / IsGetterName: accessor names a field would be read through
//   - IsAccessorCandidate: whether a method can serve as an accessor at all
//   - IsBooleanLike: whether a declared type admits the "is" accessor form
//   - SuggestAccessors: near-miss accessor names for explanations
package naming
