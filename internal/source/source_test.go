package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/wpjson-seven/pkg/client"
)

const body = `{"routes": {"/wp/v2/tags": {"methods": ["POST"], "endpoints": [{"methods": ["POST"], "args": {"name": {"type": "string", "required": true}}}]}}}`

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("http://example.com"))
	assert.True(t, IsRemote("https://example.com/wp-json/"))
	assert.False(t, IsRemote("schema.json"))
	assert.False(t, IsRemote("./https/schema.json"))
}

func TestPick(t *testing.T) {
	got, err := Pick("file.json", "https://site")
	require.NoError(t, err)
	assert.Equal(t, "file.json", got)

	got, err = Pick("", "https://site")
	require.NoError(t, err)
	assert.Equal(t, "https://site", got)

	_, err = Pick("", "")
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wp.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	doc, err := NewLoader(client.New()).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/wp/v2/tags"}, doc.Routes.Keys())
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(client.New()).Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))

	var retrievalErr *client.RetrievalError
	require.True(t, errors.As(err, &retrievalErr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	doc, err := NewLoader(client.New()).Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Routes.Len())
}
