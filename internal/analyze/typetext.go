package analyze

import (
	"go/types"
)

// TypeText renders t with package qualifiers relative to pkg.
func TypeText(t types.Type, pkg *types.Package) string {
	return types.TypeString(t, types.RelativeTo(pkg))
}

// SimpleTypeText renders t without any package qualifiers.
func SimpleTypeText(t types.Type) string {
	return types.TypeString(t, func(*types.Package) string { return "" })
}

// IsBoolean reports whether t is bool or *bool. A *bool is Go's nullable
// boolean and takes the place of a boxed boolean. Named types whose
// underlying type is bool are not boolean.
func IsBoolean(t types.Type) bool {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}

	basic, ok := types.Unalias(t).(*types.Basic)

	return ok && basic.Kind() == types.Bool
}
