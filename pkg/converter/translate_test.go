package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/wpjson-seven/pkg/draft7"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

func parseField(t *testing.T, raw string) *wpschema.Field {
	t.Helper()
	var f wpschema.Field
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	return &f
}

func translateJSON(t *testing.T, name, raw string) (*FieldSchema, string) {
	t.Helper()
	fs, err := TranslateField(name, parseField(t, raw))
	require.NoError(t, err)
	data, err := json.Marshal(fs.Schema)
	require.NoError(t, err)
	return fs, string(data)
}

func TestTranslateField_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		required bool
	}{
		{
			name: "description and required",
			raw:  `{"type": "string", "required": true, "description": "Product name."}`,
			want: `{"type": "string", "description": "Product name."}`, required: true,
		},
		{
			name: "enum implies default",
			raw:  `{"type": "string", "enum": ["draft", "publish"]}`,
			want: `{"type": "string", "default": "draft", "enum": ["draft", "publish"]}`,
		},
		{
			name: "explicit default wins over enum",
			raw:  `{"type": "string", "default": "publish", "enum": ["draft", "publish"]}`,
			want: `{"type": "string", "default": "publish", "enum": ["draft", "publish"]}`,
		},
		{
			name: "null first enum value sets no default",
			raw:  `{"enum": [null, "a"]}`,
			want: `{"type": ["array", "boolean", "integer", "null", "number", "object", "string"], "enum": [null, "a"]}`,
		},
		{
			name: "falsy default kept",
			raw:  `{"type": "boolean", "default": false}`,
			want: `{"type": "boolean", "default": false}`,
		},
		{
			name: "readonly renamed",
			raw:  `{"type": "string", "readonly": true, "context": ["view"]}`,
			want: `{"type": "string", "readOnly": true}`,
		},
		{
			name: "date format",
			raw:  `{"type": "date"}`,
			want: `{"type": "string", "format": "date"}`,
		},
		{
			name: "non-bool required ignored",
			raw:  `{"type": "string", "required": "yes"}`,
			want: `{"type": "string"}`,
		},
		{
			name: "empty enum kept",
			raw:  `{"type": "string", "enum": []}`,
			want: `{"type": "string", "enum": []}`,
		},
		{
			name: "php empty properties",
			raw:  `{"type": "object", "properties": []}`,
			want: `{"type": "object"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, got := translateJSON(t, "field", tt.raw)
			assert.JSONEq(t, tt.want, got)
			assert.Equal(t, tt.required, fs.Required)
			assert.Empty(t, fs.Definitions)
		})
	}
}

func TestTranslateField_InlineItems(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "primitive items",
			raw:  `{"type": "array", "items": {"type": "integer"}}`,
			want: `{"type": "array", "items": {"type": "integer"}}`,
		},
		{
			name: "date items",
			raw:  `{"type": "array", "items": {"type": "date-time"}}`,
			want: `{"type": "array", "items": {"type": "string", "format": "date-time"}}`,
		},
		{
			name: "object items on a non-array field",
			raw:  `{"type": "object", "items": {"type": "object", "properties": {"a": {"type": "string"}}}}`,
			want: `{"type": "object", "items": {"type": "object"}}`,
		},
		{
			name: "untyped items",
			raw:  `{"type": "array", "items": {}}`,
			want: `{"type": "array", "items": {"type": ["array", "boolean", "integer", "null", "number", "object", "string"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, got := translateJSON(t, "list", tt.raw)
			assert.JSONEq(t, tt.want, got)
			assert.Empty(t, fs.Definitions)
			assert.Empty(t, fs.Schema.Items.Ref)
		})
	}
}

func TestTranslateField_ObjectItems(t *testing.T) {
	fs, got := translateJSON(t, "images", `{
		"type": "array",
		"description": "List of images.",
		"items": {
			"type": "object",
			"properties": {
				"src": {"type": "string", "required": true},
				"alt": {"type": "string"},
				"tags": {"type": "array", "items": {"type": "object", "properties": {"slug": {"type": "string"}}}}
			}
		}
	}`)

	assert.JSONEq(t, `{"type": "array", "description": "List of images.", "items": {"$ref": "#/definitions/images"}}`, got)
	require.Len(t, fs.Definitions, 2)

	assert.Equal(t, "images", fs.Definitions[0].Name)
	def, err := json.Marshal(fs.Definitions[0].Schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"src": {"type": "string"},
			"alt": {"type": "string"},
			"tags": {"type": "array", "items": {"$ref": "#/definitions/tags"}}
		},
		"required": ["src"]
	}`, string(def))

	assert.Equal(t, "tags", fs.Definitions[1].Name)
	assert.Equal(t, draft7.TypeSet{"object"}, fs.Definitions[1].Schema.Type)
}

func TestTranslateField_NilField(t *testing.T) {
	fs, err := TranslateField("anything", nil)
	require.NoError(t, err)
	assert.Equal(t, draft7.AllTypes, fs.Schema.Type)
	assert.False(t, fs.Required)
}

func TestTranslateField_DoesNotModifyInput(t *testing.T) {
	field := parseField(t, `{"type": "string", "enum": ["a", "b"]}`)

	fs, err := TranslateField("letter", field)
	require.NoError(t, err)
	fs.Schema.Enum[0] = "z"

	assert.Equal(t, []any{"a", "b"}, field.Enum)
	assert.Nil(t, field.Default)
}
