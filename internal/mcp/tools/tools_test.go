package tools

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usestring/wpjson-seven/pkg/wpschema"
)

func mustParse(t *testing.T, data string) *wpschema.Document {
	t.Helper()
	doc, err := wpschema.Parse([]byte(data))
	require.NoError(t, err)
	return doc
}
