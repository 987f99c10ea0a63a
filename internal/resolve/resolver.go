package resolve

import (
	"member-template/internal/model"
	"member-template/internal/naming"
	"member-template/internal/signature"
)

// Strategy turns a type's members into a Mapping.
type Strategy struct {
	// Name identifies the strategy in logs and diagnostics.
	Name string
	// NeedsMethods is false for strategies that ignore methods, so Resolve
	// does not ask the model for them.
	NeedsMethods bool
	// Build produces the mapping. It must not fail.
	Build func(fields []model.Field, methods []model.Method) Mapping
}

// BeanStrategy maps fields to their accessor call.
var BeanStrategy = Strategy{
	Name:         "bean",
	NeedsMethods: true,
	Build:        BeanPairs,
}

// FieldTypeStrategy maps every field to its simple type name.
var FieldTypeStrategy = Strategy{
	Name: "field-types",
	Build: func(fields []model.Field, _ []model.Method) Mapping {
		return FieldTypes(fields)
	},
}

// CandidateAccessors returns the names of methods that may act as accessors:
// no parameters and a "get" or "is" prefix.
func CandidateAccessors(methods []model.Method) map[string]struct{} {
	candidates := make(map[string]struct{}, len(methods))

	for _, m := range methods {
		if naming.IsAccessorCandidate(m.Name, m.ParamCount) {
			candidates[m.Name] = struct{}{}
		}
	}

	return candidates
}

// BeanPairs maps each field with a bean accessor to the accessor call text.
// The "get" form wins over the "is" form; the "is" form is only accepted for
// boolean-like fields. Fields without an accessor are left out.
func BeanPairs(fields []model.Field, methods []model.Method) Mapping {
	candidates := CandidateAccessors(methods)
	result := make(Mapping, 0, len(fields))

	for _, f := range fields {
		if accessor, ok := beanAccessor(f, candidates); ok {
			result = append(result, Entry{Name: f.Name, Value: accessor + "()"})
		}
	}

	return result
}

func beanAccessor(f model.Field, candidates map[string]struct{}) (string, bool) {
	getter := naming.GetterName(f.Name)
	if _, ok := candidates[getter]; ok {
		return getter, true
	}

	if !booleanLike(f) {
		return "", false
	}

	isGetter := naming.IsGetterName(f.Name)
	if _, ok := candidates[isGetter]; ok {
		return isGetter, true
	}

	return "", false
}

// booleanLike prefers the host's classification over the type signature.
func booleanLike(f model.Field) bool {
	switch f.Boolean {
	case model.BoolYes:
		return true
	case model.BoolNo:
		return false
	default:
		return naming.IsBooleanLike(f.Type)
	}
}

// FieldTypes maps every field to the simple name of its declared type.
// Host-rendered display text is used verbatim.
func FieldTypes(fields []model.Field) Mapping {
	result := make(Mapping, 0, len(fields))

	for _, f := range fields {
		result = append(result, Entry{Name: f.Name, Value: typeName(f)})
	}

	return result
}

func typeName(f model.Field) string {
	if f.Display != "" {
		return f.Display
	}

	return signature.SimpleName(f.Type)
}

// Resolve lists the members of ref and builds a mapping with the strategy.
// Any enumeration failure is returned as a model.ErrModelUnavailable error
// and no mapping is produced.
func Resolve(tm model.TypeModel, ref model.TypeRef, strategy Strategy) (Mapping, error) {
	fields, err := tm.Fields(ref)
	if err != nil {
		return nil, model.Unavailable(ref, model.OpFields, err)
	}

	var methods []model.Method

	if strategy.NeedsMethods {
		methods, err = tm.Methods(ref)
		if err != nil {
			return nil, model.Unavailable(ref, model.OpMethods, err)
		}
	}

	return strategy.Build(fields, methods), nil
}
