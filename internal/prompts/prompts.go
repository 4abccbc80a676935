package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/parser"
)

const portDescription = "Port Go code to C# starting from a generated class skeleton"

// NewPortPrompt returns the mcp.Prompt for porting a Go file to C#
func NewPortPrompt() mcp.Prompt {
	return mcp.NewPrompt("port",
		mcp.WithPromptDescription(portDescription),
		mcp.WithArgument("filePath",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Path to the Go file"),
		),
		mcp.WithArgument("sourceCode",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Raw Go code"),
		),
		mcp.WithArgument("focusSymbol",
			mcp.ArgumentDescription("Symbol to port first"),
		),
	)
}

// PortPromptHandler returns a handler for the port prompt
func PortPromptHandler(p *parser.FileParser, opts ...composer.Option) func(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		filePath := request.Params.Arguments["filePath"]
		sourceCode := request.Params.Arguments["sourceCode"]
		focusSymbol := request.Params.Arguments["focusSymbol"]

		if filePath == "" || sourceCode == "" {
			return nil, fmt.Errorf("filePath and sourceCode are required")
		}

		fileInfo, err := p.ParseSource(filePath, []byte(sourceCode))
		if err != nil {
			return nil, err
		}

		skeleton := composer.JoinFiles(composer.New(nil, opts...).ComposeFileInfo(filePath, fileInfo))

		messages := []mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent("You are porting Go code to C#. Fill in the generated skeleton: keep its namespaces, class names and member order, and replace every NotImplementedException with a faithful translation."),
			),
			mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent("Here is the source code to port:\n\n```go\n"+sourceCode+"\n```"),
			),
		}

		if skeleton == "" {
			messages = append(messages, mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent("The file declares nothing to scaffold; translate it directly."),
			))
		} else {
			messages = append(messages, mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewEmbeddedResource(mcp.TextResourceContents{
					URI:      "classgen://" + filePath,
					MIMEType: "text/x-csharp",
					Text:     skeleton,
				}),
			))
		}

		if focusSymbol != "" {
			messages = append(messages, mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent(fmt.Sprintf("Start with the '%s' symbol and port the rest afterwards.", focusSymbol)),
			))
		}

		return mcp.NewGetPromptResult(portDescription, messages), nil
	}
}

// RegisterPrompts registers all prompts with the MCP server
func RegisterPrompts(s *server.MCPServer, p *parser.FileParser, opts ...composer.Option) error {
	s.AddPrompt(NewPortPrompt(), PortPromptHandler(p, opts...))
	return nil
}
