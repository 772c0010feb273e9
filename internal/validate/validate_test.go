package validate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/wpjson-seven/pkg/converter"
	"github.com/usestring/wpjson-seven/pkg/draft7"
	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

const discovery = `{
    "routes": {
        "/wc/v3/products": {
            "methods": ["POST"],
            "endpoints": [{
                "methods": ["POST"],
                "args": {
                    "name": {"type": "string", "required": true},
                    "status": {"type": "string", "enum": ["draft", "publish"]},
                    "menu_order": {"type": "integer"},
                    "date_created": {"type": "date-time"},
                    "meta": {"type": ""},
                    "categories": {
                        "type": "array",
                        "items": {"type": "object", "properties": {"id": {"type": "integer", "required": true}}}
                    }
                }
            }]
        }
    }
}`

func productsValidator(t *testing.T) *Validator {
	t.Helper()
	doc, err := wpschema.Parse([]byte(discovery))
	require.NoError(t, err)
	schema, err := converter.Generate(doc, "/wc/v3/products", "POST", "")
	require.NoError(t, err)

	v, err := New(schema)
	require.NoError(t, err)
	return v
}

func TestValidator_Valid(t *testing.T) {
	v := productsValidator(t)

	result := v.Validate([]byte(`{
        "name": "Hoodie",
        "status": "publish",
        "menu_order": 3,
        "date_created": "2024-01-01T00:00:00",
        "meta": [1, "two", null],
        "categories": [{"id": 9}]
    }`))
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidator_DateTime(t *testing.T) {
	v := productsValidator(t)

	tests := []struct {
		value string
		valid bool
	}{
		{"2024-01-01T00:00:00", true},
		{"2024-01-01 08:30:00", true},
		{"2024-01-01T00:00:00Z", true},
		{"2024-01-01T00:00:00.250+02:00", true},
		{"2024-01-01T00:00:00+0200", true},
		{"2024-01-01", false},
		{"2024-13-01T00:00:00", false},
		{"2024-01-01T25:00:00", false},
		{"yesterday", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			result := v.Validate([]byte(`{"name": "x", "date_created": "` + tt.value + `"}`))
			assert.Equal(t, tt.valid, result.Valid, "errors: %v", result.Errors)
			if !tt.valid {
				require.Len(t, result.Errors, 1)
				assert.Contains(t, result.Errors[0], "/date_created")
			}
		})
	}
}

func TestValidator_MissingRequired(t *testing.T) {
	v := productsValidator(t)

	result := v.Validate([]byte(`{"status": "draft"}`))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "name")
}

func TestValidator_Enum(t *testing.T) {
	v := productsValidator(t)

	result := v.Validate([]byte(`{"name": "x", "status": "trash"}`))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.True(t, strings.HasPrefix(result.Errors[0], "/status: "), result.Errors[0])
}

func TestValidator_DefinitionRef(t *testing.T) {
	v := productsValidator(t)

	result := v.Validate([]byte(`{"name": "x", "categories": [{"id": "nine"}, {}]}`))
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
	for _, msg := range result.Errors {
		assert.True(t, strings.HasPrefix(msg, "/categories/"), msg)
	}
}

func TestValidator_IntegerRejectsFraction(t *testing.T) {
	v := productsValidator(t)

	assert.False(t, v.Validate([]byte(`{"name": "x", "menu_order": 1.5}`)).Valid)
	assert.True(t, v.Validate([]byte(`{"name": "x", "menu_order": 2}`)).Valid)
}

func TestValidator_InvalidJSON(t *testing.T) {
	v := productsValidator(t)

	result := v.Validate([]byte(`{"name": `))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "invalid JSON")
}

func TestValidator_ValidateValue(t *testing.T) {
	v := productsValidator(t)

	assert.True(t, v.ValidateValue(map[string]any{"name": "x", "menu_order": json.Number("4")}).Valid)
	assert.False(t, v.ValidateValue(map[string]any{"name": 4.0}).Valid)
}

func TestNew_WithoutID(t *testing.T) {
	schema := &draft7.Schema{
		Schema: draft7.SchemaURI,
		Type:   draft7.TypeSet{draft7.TypeString, draft7.TypeNull},
	}

	v, err := New(schema)
	require.NoError(t, err)
	assert.True(t, v.Validate([]byte(`null`)).Valid)
	assert.True(t, v.Validate([]byte(`"x"`)).Valid)
	assert.False(t, v.Validate([]byte(`1`)).Valid)
}

func TestNew_Nil(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}
