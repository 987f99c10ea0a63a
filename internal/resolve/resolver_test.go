package resolve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-template/internal/model"
)

// failingModel fails the enumeration named by failOn.
type failingModel struct {
	inner  model.TypeModel
	failOn model.Op
	calls  []model.Op
}

func (m *failingModel) Fields(ref model.TypeRef) ([]model.Field, error) {
	m.calls = append(m.calls, model.OpFields)
	if m.failOn == model.OpFields {
		return nil, errors.New("index is stale")
	}

	return m.inner.Fields(ref)
}

func (m *failingModel) Methods(ref model.TypeRef) ([]model.Method, error) {
	m.calls = append(m.calls, model.OpMethods)
	if m.failOn == model.OpMethods {
		return nil, errors.New("index is stale")
	}

	return m.inner.Methods(ref)
}

func personModel() *model.StaticModel {
	return model.NewStaticModel(model.TypeInfo{
		Ref: "Person",
		Fields: []model.Field{
			{Name: "id", Type: "I"},
			{Name: "active", Type: "Z"},
		},
		Methods: []model.Method{
			{Name: "getId"},
			{Name: "isActive"},
		},
	})
}

func TestBeanPairs(t *testing.T) {
	tests := []struct {
		name     string
		fields   []model.Field
		methods  []model.Method
		expected Mapping
	}{
		{
			name:     "getter for any type",
			fields:   []model.Field{{Name: "name", Type: "QString;"}, {Name: "count", Type: "I"}},
			methods:  []model.Method{{Name: "getName"}, {Name: "getCount"}},
			expected: Mapping{{"name", "getName()"}, {"count", "getCount()"}},
		},
		{
			name:     "is accessor for primitive boolean",
			fields:   []model.Field{{Name: "active", Type: "Z"}},
			methods:  []model.Method{{Name: "isActive"}},
			expected: Mapping{{"active", "isActive()"}},
		},
		{
			name:     "is accessor for boxed boolean",
			fields:   []model.Field{{Name: "enabled", Type: "QBoolean;"}},
			methods:  []model.Method{{Name: "isEnabled"}},
			expected: Mapping{{"enabled", "isEnabled()"}},
		},
		{
			name:     "get form preferred over is form",
			fields:   []model.Field{{Name: "active", Type: "Z"}},
			methods:  []model.Method{{Name: "isActive"}, {Name: "getActive"}},
			expected: Mapping{{"active", "getActive()"}},
		},
		{
			name:     "is form ignored for non-boolean",
			fields:   []model.Field{{Name: "name", Type: "QString;"}},
			methods:  []model.Method{{Name: "isName"}},
			expected: Mapping{},
		},
		{
			name:     "host classification marks Go bool",
			fields:   []model.Field{{Name: "active", Type: "bool", Boolean: model.BoolYes}},
			methods:  []model.Method{{Name: "isActive"}},
			expected: Mapping{{"active", "isActive()"}},
		},
		{
			name:     "host classification overrides signature-like text",
			fields:   []model.Field{{Name: "ready", Type: "Z", Boolean: model.BoolNo}},
			methods:  []model.Method{{Name: "isReady"}},
			expected: Mapping{},
		},
		{
			name:     "accessor with parameters ignored",
			fields:   []model.Field{{Name: "id", Type: "I"}},
			methods:  []model.Method{{Name: "getId", ParamCount: 1}},
			expected: Mapping{},
		},
		{
			name:     "field without accessor skipped",
			fields:   []model.Field{{Name: "userName", Type: "QString;"}, {Name: "flag", Type: "Z"}},
			methods:  []model.Method{{Name: "getUserName"}},
			expected: Mapping{{"userName", "getUserName()"}},
		},
		{
			name:     "case sensitive capitalization",
			fields:   []model.Field{{Name: "URL", Type: "QString;"}, {Name: "url", Type: "QString;"}},
			methods:  []model.Method{{Name: "getURL"}},
			expected: Mapping{{"URL", "getURL()"}},
		},
		{
			name:     "no fields",
			methods:  []model.Method{{Name: "getId"}},
			expected: Mapping{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BeanPairs(tt.fields, tt.methods)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("BeanPairs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBeanPairs_DeclarationOrder(t *testing.T) {
	fields := []model.Field{
		{Name: "zeta", Type: "I"},
		{Name: "alpha", Type: "I"},
		{Name: "mid", Type: "I"},
	}
	methods := []model.Method{{Name: "getMid"}, {Name: "getAlpha"}, {Name: "getZeta"}}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, BeanPairs(fields, methods).Names())
}

func TestFieldTypes(t *testing.T) {
	fields := []model.Field{
		{Name: "id", Type: "I"},
		{Name: "active", Type: "Z"},
		{Name: "tags", Type: "Ljava.util.List<Ljava.lang.String;>;"},
		{Name: "created", Type: "time.Time"},
		{Name: "verified", Type: "*bool", Display: "*bool", Boolean: model.BoolYes},
		{Name: "code", Type: "I", Display: "I", Boolean: model.BoolNo},
	}

	expected := Mapping{
		{"id", "int"},
		{"active", "boolean"},
		{"tags", "List<String>"},
		{"created", "Time"},
		{"verified", "*bool"},
		{"code", "I"},
	}

	if diff := cmp.Diff(expected, FieldTypes(fields)); diff != "" {
		t.Errorf("FieldTypes() mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidateAccessors(t *testing.T) {
	candidates := CandidateAccessors([]model.Method{
		{Name: "getId"},
		{Name: "isActive"},
		{Name: "setId", ParamCount: 1},
		{Name: "getById", ParamCount: 1},
		{Name: "toString"},
	})

	assert.Len(t, candidates, 2)
	assert.Contains(t, candidates, "getId")
	assert.Contains(t, candidates, "isActive")
}

func TestResolve(t *testing.T) {
	m := personModel()

	beans, err := Resolve(m, "Person", BeanStrategy)
	require.NoError(t, err)
	assert.Equal(t, Mapping{{"id", "getId()"}, {"active", "isActive()"}}, beans)

	types, err := Resolve(m, "Person", FieldTypeStrategy)
	require.NoError(t, err)
	assert.Equal(t, Mapping{{"id", "int"}, {"active", "boolean"}}, types)
}

func TestResolve_FieldTypesSkipMethods(t *testing.T) {
	m := &failingModel{inner: personModel(), failOn: model.OpMethods}

	mapping, err := Resolve(m, "Person", FieldTypeStrategy)
	require.NoError(t, err)
	assert.Len(t, mapping, 2)
	assert.Equal(t, []model.Op{model.OpFields}, m.calls)
}

func TestResolve_ModelUnavailable(t *testing.T) {
	for _, op := range []model.Op{model.OpFields, model.OpMethods} {
		t.Run(string(op), func(t *testing.T) {
			m := &failingModel{inner: personModel(), failOn: op}

			mapping, err := Resolve(m, "Person", BeanStrategy)
			require.Error(t, err)
			assert.Nil(t, mapping)
			assert.ErrorIs(t, err, model.ErrModelUnavailable)

			var unavailable *model.UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, op, unavailable.Op)
		})
	}
}

func TestResolve_UnknownType(t *testing.T) {
	_, err := Resolve(personModel(), "Nobody", BeanStrategy)
	assert.ErrorIs(t, err, model.ErrModelUnavailable)
}
