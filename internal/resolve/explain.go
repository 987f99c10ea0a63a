package resolve

import (
	"fmt"
	"sort"

	"member-template/internal/diagnostic"
	"member-template/internal/model"
	"member-template/internal/naming"
)

// maxSuggestions bounds the near-miss accessors listed per field.
const maxSuggestions = 3

// Explain reports why fields of ref are missing from its bean mapping. It
// never changes what BeanPairs resolves.
func Explain(ref model.TypeRef, fields []model.Field, methods []model.Method) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	candidates := CandidateAccessors(methods)

	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, f := range fields {
		if _, ok := beanAccessor(f, candidates); ok {
			continue
		}

		isGetter := naming.IsGetterName(f.Name)
		if _, ok := candidates[isGetter]; ok {
			diags.AddWarning(diagnostic.CodeNonBooleanIs,
				fmt.Sprintf("%s() exists but the field type %q is not boolean", isGetter, typeName(f)),
				ref.String(), f.Name)

			continue
		}

		d := diagnostic.Diagnostic{
			Severity: diagnostic.SeverityInfo,
			Code:     diagnostic.CodeNoAccessor,
			Message:  fmt.Sprintf("no %s() accessor declared", naming.GetterName(f.Name)),
			Type:     ref.String(),
			Field:    f.Name,
		}

		for _, s := range naming.SuggestAccessors(f.Name, names, maxSuggestions) {
			d.Suggestions = append(d.Suggestions, s.Method+"()")
		}

		diags.Add(d)
	}

	return diags
}
