package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/parser"
)

func writeProject(t *testing.T) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/shop\n\ngo 1.21\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "orders"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "orders", "order.go"), []byte(`package orders

// Order is a purchase.
type Order struct {
	ID    string `+"`json:\"id\"`"+`
	Lines []string
}

// Total sums the order.
func (o *Order) Total() (float64, error) { return 0, nil }
`), 0644))
	return root
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	return result
}

func TestNewScaffoldGoTool(t *testing.T) {
	tool := NewScaffoldGoTool()

	assert.Equal(t, "scaffold_go", tool.Name)

	b, err := json.Marshal(tool)
	require.NoError(t, err)
	js := string(b)
	assert.Contains(t, js, "projectPath")
	assert.Contains(t, js, "filePath")
	assert.Contains(t, js, "Path to the Go project")
}

func TestScaffoldGoToolHandler(t *testing.T) {
	projectPath := writeProject(t)
	handler := ScaffoldGoToolHandler(parser.New(), composer.WithRootNamespace("Acme"))

	tests := []struct {
		name        string
		args        map[string]any
		wantErr     bool
		errContains string
	}{
		{
			name: "valid request",
			args: map[string]any{"projectPath": projectPath, "filePath": "orders/order.go"},
		},
		{
			name:        "missing projectPath",
			args:        map[string]any{"filePath": "orders/order.go"},
			wantErr:     true,
			errContains: "projectPath",
		},
		{
			name:        "missing filePath",
			args:        map[string]any{"projectPath": projectPath},
			wantErr:     true,
			errContains: "filePath",
		},
		{
			name:        "unknown file",
			args:        map[string]any{"projectPath": projectPath, "filePath": "orders/missing.go"},
			wantErr:     true,
			errContains: "file info not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, handler, tt.args)
			text := result.Content[0].(mcp.TextContent).Text
			if tt.wantErr {
				assert.True(t, result.IsError)
				assert.Contains(t, text, tt.errContains)
				return
			}

			assert.False(t, result.IsError)
			assert.Contains(t, text, "// File: Shop/Orders/Order.cs\n")
			assert.Contains(t, text, "namespace Acme.Shop.Orders\n")
			assert.Contains(t, text, "[JsonPropertyName(\"id\")] public string ID\n")
			assert.Contains(t, text, "public double Total()\n")
		})
	}
}

func TestRenderBlueprintToolHandler(t *testing.T) {
	handler := RenderBlueprintToolHandler()

	result := callTool(t, handler, map[string]any{"yaml": "name: Foo\nfields:\n  - {name: count, type: int, value: \"0\"}\n"})
	assert.False(t, result.IsError)
	assert.Contains(t, result.Content[0].(mcp.TextContent).Text, "\tpublic int count = 0;\n")

	result = callTool(t, handler, map[string]any{"yaml": "kind: class\n"})
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].(mcp.TextContent).Text, "name is required")

	result = callTool(t, handler, map[string]any{})
	assert.True(t, result.IsError)
}

func TestRegisterTools(t *testing.T) {
	s := server.NewMCPServer("Test Server", "1.0.0")
	require.NoError(t, RegisterTools(s, parser.New()))
}
