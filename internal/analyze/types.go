package analyze

import (
	"errors"
	"fmt"
	"strings"

	"member-template/internal/model"
)

// ErrTypeNotFound is wrapped by lookups of types that were not loaded.
var ErrTypeNotFound = errors.New("type not found")

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "member-template/examples/beans"
	Name    string // e.g., "Person"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Ref returns the model reference for the type.
func (t TypeID) Ref() model.TypeRef {
	return model.TypeRef(t.String())
}

// ParseTypeID splits "pkg/path.Name" at the last dot. A reference without a
// dot names a type with an empty package path.
func ParseTypeID(ref model.TypeRef) (TypeID, error) {
	s := strings.TrimSpace(string(ref))
	if s == "" {
		return TypeID{}, fmt.Errorf("empty type reference")
	}

	i := strings.LastIndex(s, ".")
	if i < 0 {
		return TypeID{Name: s}, nil
	}

	if i == len(s)-1 {
		return TypeID{}, fmt.Errorf("type reference %q has no type name", s)
	}

	// A dot inside the last path element belongs to the package path
	// ("example.com/x" has no type name).
	if strings.Contains(s[i+1:], "/") {
		return TypeID{}, fmt.Errorf("type reference %q has no type name", s)
	}

	return TypeID{PkgPath: s[:i], Name: s[i+1:]}, nil
}

// TypeInfo describes the members of a named type.
type TypeInfo struct {
	ID      TypeID       // Unique identifier
	Fields  []FieldInfo  // Declared fields, in declaration order; empty for non-structs
	Methods []MethodInfo // Declared methods, value and pointer receivers
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name       string // Go field name (type name for embedded fields)
	Type       string // Go type text relative to the declaring package
	SimpleType string // Go type text without package qualifiers
	Boolean    bool   // Whether the type is bool or *bool
}

// MethodInfo describes a declared method.
type MethodInfo struct {
	Name       string
	ParamCount int
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Lookup resolves a model reference to a loaded type.
func (g *TypeGraph) Lookup(ref model.TypeRef) (*TypeInfo, error) {
	id, err := ParseTypeID(ref)
	if err != nil {
		return nil, err
	}

	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, id)
	}

	return info, nil
}

// Fields implements model.TypeModel.
func (g *TypeGraph) Fields(ref model.TypeRef) ([]model.Field, error) {
	info, err := g.Lookup(ref)
	if err != nil {
		return nil, model.Unavailable(ref, model.OpFields, err)
	}

	fields := make([]model.Field, 0, len(info.Fields))
	for _, f := range info.Fields {
		fields = append(fields, model.Field{
			Name:    f.Name,
			Type:    f.Type,
			Display: f.SimpleType,
			Boolean: model.BoolKindOf(f.Boolean),
		})
	}

	return fields, nil
}

// Methods implements model.TypeModel.
func (g *TypeGraph) Methods(ref model.TypeRef) ([]model.Method, error) {
	info, err := g.Lookup(ref)
	if err != nil {
		return nil, model.Unavailable(ref, model.OpMethods, err)
	}

	methods := make([]model.Method, 0, len(info.Methods))
	for _, m := range info.Methods {
		methods = append(methods, model.Method{Name: m.Name, ParamCount: m.ParamCount})
	}

	return methods, nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
