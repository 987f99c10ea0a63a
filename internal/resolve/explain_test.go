package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-template/internal/diagnostic"
	"member-template/internal/model"
)

func TestExplain(t *testing.T) {
	fields := []model.Field{
		{Name: "id", Type: "I"},
		{Name: "userName", Type: "QString;"},
		{Name: "name", Type: "QString;"},
		{Name: "flag", Type: "Z"},
	}
	methods := []model.Method{
		{Name: "getId"},
		{Name: "getUsername"},
		{Name: "isName"},
	}

	diags := Explain("Person", fields, methods)

	assert.False(t, diags.HasErrors())

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeNonBooleanIs, diags.Warnings[0].Code)
	assert.Equal(t, "name", diags.Warnings[0].Field)

	require.Len(t, diags.Infos, 2)

	userName := diags.Infos[0]
	assert.Equal(t, "userName", userName.Field)
	assert.Equal(t, "Person", userName.Type)
	assert.Equal(t, diagnostic.CodeNoAccessor, userName.Code)
	assert.Equal(t, []string{"getUsername()"}, userName.Suggestions)

	flag := diags.Infos[1]
	assert.Equal(t, "flag", flag.Field)
	assert.Empty(t, flag.Suggestions)
}

func TestExplain_AllResolved(t *testing.T) {
	m := personModel()

	fields, err := m.Fields("Person")
	require.NoError(t, err)
	methods, err := m.Methods("Person")
	require.NoError(t, err)

	diags := Explain("Person", fields, methods)
	assert.Equal(t, 0, diags.Len())
}
