// Package analyze provides package loading and member extraction for Go
// types, exposed as a model.TypeModel.
//
// It uses golang.org/x/tools/go/packages with go/types to list, for every
// named type of the loaded packages, its declared fields in declaration
// order and its declared methods with their parameter counts.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: fields and methods of one named type
//   - TypeGraph: all analyzed types; implements model.TypeModel
package analyze
