package mcp

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	mcp_golang "github.com/metoro-io/mcp-golang"
	"github.com/vlad/classgen-go/internal/blueprint"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/parser"
)

// scaffoldTimeout bounds a whole-project scaffold.
const scaffoldTimeout = 30 * time.Second

// compressJSON compresses JSON data using zstd and encodes it as base64 so
// it survives a text content block
func compressJSON(data []byte) (string, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return "", fmt.Errorf("failed to create zstd encoder: %v", err)
	}
	defer encoder.Close()
	return base64.StdEncoding.EncodeToString(encoder.EncodeAll(data, nil)), nil
}

// DecompressJSON reverses compressJSON.
func DecompressJSON(payload string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %v", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %v", err)
	}
	defer decoder.Close()
	return decoder.DecodeAll(raw, nil)
}

// ScaffoldSourceArgs defines arguments for scaffold_source tool
type ScaffoldSourceArgs struct {
	FilePath   string `json:"filePath" jsonschema:"required,description=Path to the Go file"`
	SourceCode string `json:"sourceCode" jsonschema:"required,description=Raw Go code"`
}

// ScaffoldProjectArgs defines arguments for scaffold_project tool
type ScaffoldProjectArgs struct {
	RootDir string `json:"rootDir" jsonschema:"required,description=Project root directory"`
}

// RenderBlueprintArgs defines arguments for render_blueprint tool
type RenderBlueprintArgs struct {
	YAML string `json:"yaml" jsonschema:"required,description=Blueprint document"`
}

// Tools holds the compat tool implementations. Responses are JSON arrays
// of generated files, zstd compressed and base64 encoded.
type Tools struct {
	files    *parser.FileParser
	projects *parser.ProjectParser
	opts     []composer.Option
}

// NewTools creates the compat tool set.
func NewTools(files *parser.FileParser, projects *parser.ProjectParser, opts ...composer.Option) *Tools {
	return &Tools{files: files, projects: projects, opts: opts}
}

// ScaffoldSource scaffolds a single Go file given as source text.
func (t *Tools) ScaffoldSource(args ScaffoldSourceArgs) (*mcp_golang.ToolResponse, error) {
	log.Printf("Processing scaffold_source request for file: %s", args.FilePath)

	info, err := t.files.ParseSource(args.FilePath, []byte(args.SourceCode))
	if err != nil {
		return nil, fmt.Errorf("parse error: %v", err)
	}

	return respond(composer.New(nil, t.opts...).ComposeFileInfo(args.FilePath, info))
}

// ScaffoldProject scaffolds every file of a Go module.
func (t *Tools) ScaffoldProject(args ScaffoldProjectArgs) (*mcp_golang.ToolResponse, error) {
	log.Printf("Processing scaffold_project request for directory: %s", args.RootDir)

	root, err := filepath.Abs(args.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root: %v", err)
	}

	done := make(chan struct{})
	var files []composer.File
	var scaffoldErr error

	go func() {
		defer close(done)
		info, err := t.projects.ParseProject(root)
		if err != nil {
			scaffoldErr = err
			return
		}
		files, scaffoldErr = composer.New(info, t.opts...).ComposeAll()
	}()

	select {
	case <-done:
		if scaffoldErr != nil {
			return nil, fmt.Errorf("scaffold failed: %v", scaffoldErr)
		}
	case <-time.After(scaffoldTimeout):
		return nil, fmt.Errorf("scaffold timed out after %s", scaffoldTimeout)
	}

	return respond(files)
}

// RenderBlueprint renders a YAML blueprint.
func (t *Tools) RenderBlueprint(args RenderBlueprintArgs) (*mcp_golang.ToolResponse, error) {
	log.Printf("Processing render_blueprint request")

	b, err := blueprint.Parse([]byte(args.YAML))
	if err != nil {
		return nil, err
	}
	f, err := b.File()
	if err != nil {
		return nil, err
	}
	return respond([]composer.File{f})
}

func respond(files []composer.File) (*mcp_golang.ToolResponse, error) {
	if files == nil {
		files = []composer.File{}
	}
	jsonFiles, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal files: %v", err)
	}

	compressed, err := compressJSON(jsonFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to compress response: %v", err)
	}

	return mcp_golang.NewToolResponse(mcp_golang.NewTextContent(compressed)), nil
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcp_golang.Server, t *Tools) error {
	if err := server.RegisterTool("scaffold_source", "Scaffold C# classes from Go source", t.ScaffoldSource); err != nil {
		return fmt.Errorf("failed to register scaffold_source tool: %v", err)
	}
	if err := server.RegisterTool("scaffold_project", "Scaffold C# classes for a whole Go project", t.ScaffoldProject); err != nil {
		return fmt.Errorf("failed to register scaffold_project tool: %v", err)
	}
	if err := server.RegisterTool("render_blueprint", "Render a class from a YAML blueprint", t.RenderBlueprint); err != nil {
		return fmt.Errorf("failed to register render_blueprint tool: %v", err)
	}
	return nil
}
