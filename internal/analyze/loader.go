package analyze

import (
	"fmt"
	"go/types"
	"io"
	"log/slog"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph  *TypeGraph
	dir    string
	logger *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDir sets the directory packages are loaded from. The default is the
// current directory.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		graph:  NewTypeGraph(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./model", "member-template/examples/beans").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// processPackage extracts named types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		info := a.analyzeNamedType(named, pkg.Types)
		info.ID = typeID

		a.graph.Types[typeID] = info
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	a.logger.Debug("analyzed package",
		"package", pkg.PkgPath,
		"types", len(pkgInfo.Types))
}

// analyzeNamedType lists the declared fields and methods of a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, pkg *types.Package) *TypeInfo {
	info := &TypeInfo{}

	if st, ok := named.Underlying().(*types.Struct); ok {
		info.Fields = structFields(st, pkg)
	}

	for i := 0; i < named.NumMethods(); i++ {
		fn := named.Method(i)

		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}

		info.Methods = append(info.Methods, MethodInfo{
			Name:       fn.Name(),
			ParamCount: sig.Params().Len(),
		})
	}

	return info
}

// structFields extracts fields from a struct type in declaration order.
func structFields(st *types.Struct, pkg *types.Package) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		fields = append(fields, FieldInfo{
			Name:       field.Name(),
			Type:       TypeText(field.Type(), pkg),
			SimpleType: SimpleTypeText(field.Type()),
			Boolean:    IsBoolean(field.Type()),
		})
	}

	return fields
}
