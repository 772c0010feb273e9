package draft7

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSet_JSON(t *testing.T) {
	single, err := json.Marshal(TypeSet{"string"})
	require.NoError(t, err)
	assert.JSONEq(t, `"string"`, string(single))

	union, err := json.Marshal(AllTypes)
	require.NoError(t, err)
	assert.JSONEq(t, `["array", "boolean", "integer", "null", "number", "object", "string"]`, string(union))

	var got TypeSet
	require.NoError(t, json.Unmarshal([]byte(`"integer"`), &got))
	assert.Equal(t, TypeSet{"integer"}, got)
	require.NoError(t, json.Unmarshal([]byte(`["string", "null"]`), &got))
	assert.Equal(t, TypeSet{"string", "null"}, got)
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestSchema_KeyOrder(t *testing.T) {
	readOnly := true
	s := &Schema{
		ID:         "post.schema.json",
		Schema:     SchemaURI,
		Type:       TypeSet{TypeObject},
		Properties: NewProperties(),
	}
	s.Properties.Set("title", &Schema{Type: TypeSet{TypeString}, Description: "Title", ReadOnly: &readOnly})
	s.Properties.Set("author", &Schema{Type: TypeSet{TypeInteger}})
	s.Required = []string{"title"}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t,
		`{"$id":"post.schema.json","$schema":"http://json-schema.org/draft-07/schema#","type":"object",`+
			`"properties":{"title":{"type":"string","description":"Title","readOnly":true},"author":{"type":"integer"}},`+
			`"required":["title"]}`,
		string(data))
}

func TestSchema_Unmarshal(t *testing.T) {
	var s Schema
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "object",
		"properties": {"b": {"type": "array", "items": {"$ref": "#/definitions/b"}}, "a": {"type": "string"}},
		"definitions": {"b": {"type": "object"}}
	}`), &s))

	assert.Equal(t, "#/definitions/b", s.Property("b").Items.Ref)
	assert.NotNil(t, s.Definition("b"))
	assert.Nil(t, s.Definition("missing"))

	var keys []string
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestDefinitionRef(t *testing.T) {
	assert.Equal(t, "#/definitions/line_items", DefinitionRef("line_items"))
}

func TestProperties_HTMLEscaping(t *testing.T) {
	s := &Schema{Properties: NewProperties(), Definitions: NewProperties()}
	s.Properties.Set("title", &Schema{Description: "Title <b>&</b> heading"})
	s.Definitions.Set("a<b", &Schema{Enum: []any{"x & y"}})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(s))
	assert.Equal(t,
		`{"properties":{"title":{"description":"Title <b>&</b> heading"}},"definitions":{"a<b":{"enum":["x & y"]}}}`+"\n",
		buf.String())

	escaped, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(escaped), `Title \u003cb\u003e\u0026\u003c/b\u003e heading`)
}

func TestProperties_NilMarshal(t *testing.T) {
	var p *Properties
	data, err := p.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
