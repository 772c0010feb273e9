package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/wpjson-seven/pkg/draft7"
)

func schema(id string, required ...string) *draft7.Schema {
	props := draft7.NewProperties()
	for _, name := range required {
		props.Set(name, &draft7.Schema{Type: draft7.TypeSet{draft7.TypeString}})
	}
	return &draft7.Schema{
		ID:         id,
		Schema:     draft7.SchemaURI,
		Type:       draft7.TypeSet{draft7.TypeObject},
		Properties: props,
		Required:   required,
	}
}

func TestValidatorCache_Get(t *testing.T) {
	c, err := NewValidatorCache(2)
	require.NoError(t, err)

	first, err := c.Get(schema("tags.schema.json", "name"))
	require.NoError(t, err)
	again, err := c.Get(schema("tags.schema.json", "name"))
	require.NoError(t, err)

	assert.Same(t, first, again, "equal schemas share a validator")
	assert.Equal(t, 1, c.Len())

	assert.True(t, first.Validate([]byte(`{"name": "x"}`)).Valid)
	assert.False(t, first.Validate([]byte(`{}`)).Valid)
}

func TestValidatorCache_Evicts(t *testing.T) {
	c, err := NewValidatorCache(2)
	require.NoError(t, err)

	for _, id := range []string{"a.schema.json", "b.schema.json", "c.schema.json"} {
		_, err := c.Get(schema(id))
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())
}

func TestNewValidatorCache_InvalidSize(t *testing.T) {
	_, err := NewValidatorCache(0)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	a, err := Key(schema("tags.schema.json", "name"))
	require.NoError(t, err)
	b, err := Key(schema("tags.schema.json", "slug"))
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
