package mcpsrv

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/wpjson-seven/internal/config"
	"github.com/usestring/wpjson-seven/pkg/client"
)

type countInput struct {
	Source string `json:"source"`
	Route  string `json:"route"`
}

type countOutput struct {
	Required int `json:"required"`
}

func connect(t *testing.T, srv *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := srv.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	session, err := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "0"}, nil).Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func toolNames(t *testing.T, session *mcp.ClientSession) []string {
	t.Helper()
	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	return names
}

func TestNewServer_RequiresClient(t *testing.T) {
	_, err := NewServer(nil)
	assert.Error(t, err)
}

func TestNewServer_BuiltinTools(t *testing.T) {
	srv, err := NewServer(client.New(), WithConfig(config.LoadFrom(nil)))
	require.NoError(t, err)
	defer srv.Close()

	assert.ElementsMatch(t,
		[]string{"wpjson_list_routes", "wpjson_convert", "wpjson_validate"},
		toolNames(t, connect(t, srv)))
	assert.Equal(t, config.DefaultMaxDepth, srv.Deps().Config.MaxDepth)
}

func TestNewServer_DepsTool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wp.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"routes": {"/wp/v2/tags": {"methods": ["POST"], "endpoints": [
        {"methods": ["POST"], "args": {"name": {"type": "string", "required": true}, "slug": {"type": "string"}}}
    ]}}}`), 0o644))

	srv, err := NewServer(client.New(),
		WithConfig(config.LoadFrom(nil)),
		WithoutBuiltinTools(),
		WithDepsTool(&mcp.Tool{Name: "count_required"}, func(d *Deps) func(context.Context, *mcp.CallToolRequest, countInput) (*mcp.CallToolResult, countOutput, error) {
			return func(ctx context.Context, req *mcp.CallToolRequest, in countInput) (*mcp.CallToolResult, countOutput, error) {
				doc, err := d.Loader.Load(ctx, in.Source)
				if err != nil {
					return nil, countOutput{}, err
				}
				schema, err := d.Converter().Generate(doc, in.Route, "", "")
				if err != nil {
					return nil, countOutput{}, err
				}
				return nil, countOutput{Required: len(schema.Required)}, nil
			}
		}),
	)
	require.NoError(t, err)
	defer srv.Close()

	session := connect(t, srv)
	assert.Equal(t, []string{"count_required"}, toolNames(t, session))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "count_required",
		Arguments: map[string]any{"source": path, "route": "/wp/v2/tags"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, map[string]any{"required": float64(1)}, res.StructuredContent)
}

func TestNewServer_LogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	logFile := filepath.Join(t.TempDir(), "logs", "mcp.log")

	srv, err := NewServer(client.New(), WithConfig(config.LoadFrom(nil)), WithLogFile(logFile), WithLogLevel("debug"))
	require.NoError(t, err)
	require.NoError(t, srv.Close())

	assert.DirExists(t, filepath.Dir(logFile))
}
