package main

import (
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"
	mcp_golang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"
	"github.com/vlad/classgen-go/internal/composer"
	"github.com/vlad/classgen-go/internal/config"
	compat "github.com/vlad/classgen-go/internal/mcp"
	"github.com/vlad/classgen-go/internal/parser"
	"github.com/vlad/classgen-go/internal/prompts"
	"github.com/vlad/classgen-go/internal/tools"
)

func main() {
	compatMode := flag.Bool("compat", false, "Serve the compressed compat tool set")
	dir := flag.String("dir", ".", "Directory holding classgen.yaml")
	flag.Parse()

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	opts := cfg.ComposerOptions()

	if *compatMode {
		if err := serveCompat(opts); err != nil {
			log.Fatalf("Server error: %v\n", err)
		}
		return
	}

	// Initialize components
	s := newServer(opts)

	// Start the stdio server
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v\n", err)
	}
}

func newServer(opts []composer.Option) *server.MCPServer {
	s := server.NewMCPServer(
		"classgen",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
	)

	// Register tools
	if err := tools.RegisterTools(s, parser.New(), opts...); err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}

	// Register prompts
	if err := prompts.RegisterPrompts(s, parser.NewFileParser(), opts...); err != nil {
		log.Fatalf("Failed to register prompts: %v", err)
	}
	return s
}

func serveCompat(opts []composer.Option) error {
	s := mcp_golang.NewServer(stdio.NewStdioServerTransport())
	if err := compat.RegisterTools(s, compat.NewTools(parser.NewFileParser(), parser.New(), opts...)); err != nil {
		return err
	}
	return s.Serve()
}
