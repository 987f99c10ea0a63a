package variable

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-template/internal/model"
)

type brokenModel struct{}

func (brokenModel) Fields(model.TypeRef) ([]model.Field, error) {
	return nil, errors.New("workspace is closing")
}

func (brokenModel) Methods(model.TypeRef) ([]model.Method, error) {
	return nil, errors.New("workspace is closing")
}

func testModel() *model.StaticModel {
	return model.NewStaticModel(
		model.TypeInfo{
			Ref:     "Person",
			Fields:  []model.Field{{Name: "id", Type: "I"}, {Name: "active", Type: "Z"}},
			Methods: []model.Method{{Name: "getId"}, {Name: "isActive"}},
		},
		model.TypeInfo{
			Ref: "Account",
			Fields: []model.Field{
				{Name: "userName", Type: "QString;"},
				{Name: "flag", Type: "Z"},
			},
			Methods: []model.Method{{Name: "getUserName"}, {Name: "toString"}},
		},
		model.TypeInfo{Ref: "Empty"},
	)
}

func newTestResolver() *Resolver {
	return NewResolver(testModel(), WithLineSeparator("\n"))
}

func TestResolveBeanFieldTemplate2(t *testing.T) {
	r := newTestResolver()

	res, err := r.ResolveBeanFieldTemplate2("Person", []string{"${name}: ${getter}", ", "})
	require.NoError(t, err)
	assert.True(t, res.Applicable)
	assert.Equal(t, "id: getId(), active: isActive()", res.Text)
}

func TestResolveBeanFieldTemplate2_NewlinePlaceholder(t *testing.T) {
	r := newTestResolver()

	res, err := r.ResolveBeanFieldTemplate2("Person", []string{"${getter}", " +${newline}"})
	require.NoError(t, err)
	assert.Equal(t, "getId() +\nisActive()", res.Text)
}

func TestResolveBeanFieldTemplate(t *testing.T) {
	r := newTestResolver()

	res, err := r.ResolveBeanFieldTemplate("Person", []string{"${name}=${getter}", "&& ", "true"})
	require.NoError(t, err)
	assert.True(t, res.Applicable)
	assert.Equal(t, "id=getId()\n&& active=isActive()", res.Text)

	res, err = r.ResolveBeanFieldTemplate("Person", []string{"${name}=${getter}", ", ", "false"})
	require.NoError(t, err)
	assert.Equal(t, "id=getId(), active=isActive()", res.Text)

	// The flag form does not interpret ${newline}.
	res, err = r.ResolveBeanFieldTemplate("Person", []string{"${name}", "${newline}", "no"})
	require.NoError(t, err)
	assert.Equal(t, "id${newline}active", res.Text)
}

func TestResolveFieldTemplate(t *testing.T) {
	r := newTestResolver()

	res, err := r.ResolveFieldTemplate("Person", []string{"${type} ${name};", "${newline}"})
	require.NoError(t, err)
	assert.True(t, res.Applicable)
	assert.Equal(t, "int id;\nboolean active;", res.Text)

	res, err = r.ResolveFieldTemplate("Person", []string{"${type} ${name}", ";${newline}"})
	require.NoError(t, err)
	assert.Equal(t, "int id;\nboolean active", res.Text)

	// Template and separator both end in ";": the join is literal.
	res, err = r.ResolveFieldTemplate("Person", []string{"${type} ${name};", ";${newline}"})
	require.NoError(t, err)
	assert.Equal(t, "int id;;\nboolean active;", res.Text)
}

func TestResolve_SkipsFieldsWithoutAccessor(t *testing.T) {
	r := newTestResolver()

	res, err := r.ResolveBeanFieldTemplate2("Account", []string{"${name}", ","})
	require.NoError(t, err)
	assert.Equal(t, "userName", res.Text)

	// Plain fields keep everything.
	res, err = r.ResolveFieldTemplate("Account", []string{"${name}", ","})
	require.NoError(t, err)
	assert.Equal(t, "userName,flag", res.Text)
}

func TestResolve_EmptyType(t *testing.T) {
	r := newTestResolver()

	res, err := r.ResolveFieldTemplate("Empty", []string{"${name}", ","})
	require.NoError(t, err)
	assert.True(t, res.Applicable)
	assert.Empty(t, res.Text)
}

func TestResolve_ArityMismatch(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name    string
		variant Variant
		params  []string
	}{
		{"bean newline with two", BeanFieldsNewline, []string{"${name}", ","}},
		{"bean newline with four", BeanFieldsNewline, []string{"${name}", ",", "true", "x"}},
		{"bean with one", BeanFields, []string{"${name}"}},
		{"bean with three", BeanFields, []string{"${name}", ",", "true"}},
		{"fields with none", Fields, nil},
		{"fields with four", Fields, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(tt.variant, "Person", tt.params)
			require.NoError(t, err)
			assert.False(t, res.Applicable)
			assert.Empty(t, res.Text)
		})
	}
}

func TestResolve_ArityCheckedBeforeModel(t *testing.T) {
	r := NewResolver(brokenModel{})

	res, err := r.ResolveFieldTemplate("Person", []string{"${name}"})
	require.NoError(t, err)
	assert.False(t, res.Applicable)
}

func TestResolve_ModelUnavailable(t *testing.T) {
	for _, tm := range []model.TypeModel{brokenModel{}, testModel()} {
		r := NewResolver(tm)

		for _, v := range Variants() {
			params := make([]string, v.Arity())
			res, err := r.Resolve(v, "Missing", params)
			require.Error(t, err)
			assert.True(t, IsModelUnavailable(err))
			assert.False(t, res.Applicable)
			assert.Empty(t, res.Text)
		}
	}
}

func TestResolve_UnknownVariant(t *testing.T) {
	r := newTestResolver()

	res, err := r.Resolve(VariantUnknown, "Person", []string{"a", "b"})
	require.Error(t, err)
	assert.False(t, IsModelUnavailable(err))
	assert.False(t, res.Applicable)
}

func TestResolve_Logging(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewResolver(testModel(), WithLogger(logger))

	_, err := r.ResolveBeanFieldTemplate2("Person", []string{"${name}"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "template variable not applicable")
	assert.Contains(t, buf.String(), "variable=enclosed_bean_fields")
}

func TestResolve_Idempotent(t *testing.T) {
	r := newTestResolver()
	params := []string{"${name}: ${getter}", ", "}

	first, err := r.ResolveBeanFieldTemplate2("Person", params)
	require.NoError(t, err)

	second, err := r.ResolveBeanFieldTemplate2("Person", params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_Concurrent(t *testing.T) {
	r := newTestResolver()

	var wg sync.WaitGroup

	results := make([]string, 32)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			res, err := r.ResolveBeanFieldTemplate2("Person", []string{"${name}: ${getter}", ", "})
			if err == nil {
				results[i] = res.Text
			}
		}(i)
	}

	wg.Wait()

	for _, text := range results {
		assert.Equal(t, "id: getId(), active: isActive()", text)
	}
}
