package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/docview/internal/content"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the documentation route table,
// link resolver and renderer as tools.
type Server struct {
	table    *route.Table
	loader   content.Loader
	renderer *render.Renderer
	log      *slog.Logger
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(table *route.Table, loader content.Loader, renderer *render.Renderer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		table:    table,
		loader:   loader,
		renderer: renderer,
		log:      log,
	}

	s.mcp = server.NewMCPServer(
		"docview",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listRoutesTool, s.handleListRoutes)
	s.mcp.AddTool(resolveLinkTool, s.handleResolveLink)
	s.mcp.AddTool(getDocumentTool, s.handleGetDocument)
	s.mcp.AddTool(checkLinksTool, s.handleCheckLinks)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
