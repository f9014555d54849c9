package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/n0madic/gpt5-mcp/internal/config"
	"github.com/n0madic/gpt5-mcp/internal/query"
)

// Server exposes the gpt5_query tool over MCP.
type Server struct {
	Config   *config.Config
	Executor *query.Executor
	MCP      *mcpserver.MCPServer

	httpServer *http.Server
}

// New creates a server with the gpt5_query tool registered.
func New(cfg *config.Config, exec *query.Executor) *Server {
	s := &Server{
		Config:   cfg,
		Executor: exec,
		MCP: mcpserver.NewMCPServer(
			config.ServerName,
			config.ServerVersion,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
		),
	}
	s.MCP.AddTool(newQueryTool(), s.handleQuery)
	return s
}

// HandleMessage processes a single JSON-RPC message. The stdio and HTTP
// transports both end up here.
func (s *Server) HandleMessage(ctx context.Context, msg []byte) mcp.JSONRPCMessage {
	return s.MCP.HandleMessage(ctx, msg)
}

// ServeStdio serves MCP over in/out until ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.MCP)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))
	slog.Info("gpt5-mcp serving", "transport", config.TransportStdio, "version", config.ServerVersion)
	return stdio.Listen(ctx, in, out)
}

// Handler returns the HTTP handler for the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/mcp", mcpserver.NewStreamableHTTPServer(s.MCP))
	return authMiddleware(s.Config, verboseMiddleware(s.Config, mux))
}

// ListenAndServe serves the streamable HTTP transport on Config.Addr.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:              s.Config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	slog.Info("gpt5-mcp serving", "transport", config.TransportHTTP, "addr", s.Config.Addr, "version", config.ServerVersion)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP transport.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
