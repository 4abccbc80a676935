package tools

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/vlad/classgen-go/internal/blueprint"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/parser"
)

// NewScaffoldGoTool returns the mcp.Tool for scaffolding C# from a Go file
func NewScaffoldGoTool() mcp.Tool {
	return mcp.NewTool("scaffold_go",
		mcp.WithDescription("Scaffold C# classes for the declarations of a Go file"),
		mcp.WithString("projectPath",
			mcp.Required(),
			mcp.Description("Path to the Go project"),
		),
		mcp.WithString("filePath",
			mcp.Required(),
			mcp.Description("Path to the Go file, relative to the project"),
		),
	)
}

// ScaffoldGoToolHandler returns a handler for the scaffold_go tool
func ScaffoldGoToolHandler(p *parser.ProjectParser, opts ...composer.Option) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projectPath, err := request.RequireString("projectPath")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		filePath, err := request.RequireString("filePath")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		projectPath, err = filepath.Abs(projectPath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to resolve project path: %v", err)), nil
		}

		projectInfo, err := p.ParseProject(projectPath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse project: %v", err)), nil
		}

		fullFilePath := filePath
		if !filepath.IsAbs(fullFilePath) {
			fullFilePath = filepath.Join(projectPath, filePath)
		}

		text, err := composer.New(projectInfo, opts...).ComposeText(fullFilePath)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to scaffold file: %v", err)), nil
		}
		if text == "" {
			return mcp.NewToolResultText("// nothing to scaffold"), nil
		}

		return mcp.NewToolResultText(text), nil
	}
}

// NewRenderBlueprintTool returns the mcp.Tool rendering a YAML blueprint
func NewRenderBlueprintTool() mcp.Tool {
	return mcp.NewTool("render_blueprint",
		mcp.WithDescription("Render a class from a YAML blueprint"),
		mcp.WithString("yaml",
			mcp.Required(),
			mcp.Description("Blueprint document"),
		),
	)
}

// RenderBlueprintToolHandler returns a handler for the render_blueprint tool
func RenderBlueprintToolHandler() func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		doc, err := request.RequireString("yaml")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		b, err := blueprint.Parse([]byte(doc))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		src, err := b.Render()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(src.String()), nil
	}
}

// RegisterTools registers all tools with the MCP server
func RegisterTools(s *server.MCPServer, p *parser.ProjectParser, opts ...composer.Option) error {
	s.AddTool(NewScaffoldGoTool(), ScaffoldGoToolHandler(p, opts...))
	s.AddTool(NewRenderBlueprintTool(), RenderBlueprintToolHandler())
	return nil
}
