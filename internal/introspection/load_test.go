package introspection

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "shop.json"))
	require.NoError(t, err)

	assert.Equal(t, "QueryRoot", s.QueryTypeName)
	assert.Equal(t, "Mutation", s.MutationTypeName)
	assert.Empty(t, s.SubscriptionTypeName)
	assert.Nil(t, s.SubscriptionType())

	require.NotNil(t, s.QueryType())
	assert.Equal(t, KindObject, s.QueryType().Kind)
	require.NotNil(t, s.MutationType())

	shop := s.Type("Shop")
	require.NotNil(t, shop)
	require.Len(t, shop.Fields, 4)

	products := shop.Fields[2]
	assert.Equal(t, "products", products.Name)
	assert.Equal(t, "[Product!]!", products.Type.String())
	assert.True(t, products.Type.IsNonNull())
	assert.True(t, products.Type.IsList())
	assert.Equal(t, "Product", products.Type.Named().Name)
	assert.Empty(t, products.RequiredArgs())
	assert.Len(t, products.OptionalArgs(), 2)

	legacy := shop.Fields[3]
	assert.True(t, legacy.IsDeprecated)
	assert.Equal(t, "Use `url`.", legacy.DeprecationReason)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestParse_BareSchema(t *testing.T) {
	s, err := Parse([]byte(`{"__schema":{"queryType":{"name":"Q"},"types":[{"kind":"OBJECT","name":"Q","fields":[]}]}}`))
	require.NoError(t, err)
	assert.Equal(t, "Q", s.QueryType().Name)
}

func TestParse_ScalarOnly(t *testing.T) {
	s, err := Parse([]byte(`{"data":{"__schema":{"types":[{"kind":"SCALAR","name":"Decimal"}]}}}`))
	require.NoError(t, err)
	assert.Nil(t, s.QueryType())
	require.Len(t, s.Types(), 1)
	assert.Equal(t, KindScalar, s.Types()[0].Kind)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{"data": `},
		{"array", `[1, 2, 3]`},
		{"no schema", `{"data":{}}`},
		{"no types", `{"data":{"__schema":{"queryType":{"name":"Q"}}}}`},
		{"server errors", `{"errors":[{"message":"introspection disabled"}]}`},
		{"unnamed type", `{"__schema":{"types":[{"kind":"OBJECT"}]}}`},
		{"bad kind", `{"__schema":{"types":[{"kind":"TABLE","name":"T"}]}}`},
		{"wrapper kind", `{"__schema":{"types":[{"kind":"LIST","name":"T"}]}}`},
		{"duplicate", `{"__schema":{"types":[{"kind":"SCALAR","name":"T"},{"kind":"SCALAR","name":"T"}]}}`},
		{"dangling wrapper", `{"__schema":{"types":[{"kind":"OBJECT","name":"T","fields":[{"name":"f","type":{"kind":"NON_NULL"}}]}]}}`},
		{"unknown query type", `{"__schema":{"queryType":{"name":"Missing"},"types":[{"kind":"SCALAR","name":"T"}]}}`},
		{"null field", `{"__schema":{"types":[{"kind":"OBJECT","name":"T","fields":[null]}]}}`},
		{"null argument", `{"__schema":{"types":[{"kind":"OBJECT","name":"T","fields":[{"name":"f","args":[null],"type":{"kind":"SCALAR","name":"String"}}]}]}}`},
		{"null input field", `{"__schema":{"types":[{"kind":"INPUT_OBJECT","name":"T","inputFields":[null]}]}}`},
		{"null enum value", `{"__schema":{"types":[{"kind":"ENUM","name":"T","enumValues":[null]}]}}`},
		{"unnamed enum value", `{"__schema":{"types":[{"kind":"ENUM","name":"T","enumValues":[{"name":""}]}]}}`},
		{"null interface", `{"__schema":{"types":[{"kind":"OBJECT","name":"T","fields":[],"interfaces":[null]}]}}`},
		{"null possible type", `{"__schema":{"types":[{"kind":"UNION","name":"T","possibleTypes":[null]}]}}`},
		{"unnamed possible type", `{"__schema":{"types":[{"kind":"UNION","name":"T","possibleTypes":[{"kind":"OBJECT"}]}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedSchema)
		})
	}
}

func TestLoad_MalformedFileWrapsSentinel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMalformedSchema)
}

func TestTypes_Sorted(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "shop.json"))
	require.NoError(t, err)

	types := s.Types()
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1].Name, types[i].Name)
	}
}

func TestImplementations(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "shop.json"))
	require.NoError(t, err)

	var names []string
	for _, impl := range s.Implementations("SearchResult") {
		names = append(names, impl.Name)
	}
	assert.Equal(t, []string{"Product", "Shop"}, names)
	assert.Nil(t, s.Implementations("Missing"))
}

func TestTypeRefString(t *testing.T) {
	ref := &TypeRef{Kind: KindList, OfType: &TypeRef{Kind: KindNonNull, OfType: &TypeRef{Kind: KindScalar, Name: "Int"}}}
	assert.Equal(t, "[Int!]", ref.String())
	assert.False(t, ref.IsNonNull())
	assert.True(t, ref.IsList())
	assert.Equal(t, "Int", ref.Named().Name)
}

func TestHelpers(t *testing.T) {
	assert.True(t, IsBuiltinScalar("ID"))
	assert.False(t, IsBuiltinScalar("Decimal"))
	assert.True(t, IsIntrospectionType("__Schema"))
	assert.False(t, IsIntrospectionType("Schema"))
}
