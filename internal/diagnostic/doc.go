// Package diagnostic provides structured info, warning, and error records
// explaining how a type's members were resolved.
//
// Key capabilities:
//   - Fields left out of a bean mapping, with near-miss accessor suggestions
//   - Accessors that only match under a relaxed convention
//   - Host failures while enumerating members
package diagnostic
