package server

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ironsheep/worldbank-docs-mcp/internal/wbapi"
)

// Server exposes the World Bank document-search tools over the MCP
// protocol. It owns the single API client through which every upstream
// request flows.
type Server struct {
	api *wbapi.Client
	mcp *mcpserver.MCPServer
}

// New creates a server instance. An empty apiBaseURL selects the
// production Documents & Reports endpoint; tests point it at a local
// double.
func New(version, apiBaseURL string) *Server {
	s := &Server{
		api: wbapi.NewClient(apiBaseURL),
	}
	s.mcp = mcpserver.NewMCPServer(
		"worldbank-docs-mcp",
		version,
		mcpserver.WithToolCapabilities(false),
	)
	s.mcp.AddTools(s.tools()...)
	return s
}

// Run serves the MCP protocol over stdin/stdout until the client
// disconnects.
func (s *Server) Run() error {
	return mcpserver.ServeStdio(s.mcp)
}
