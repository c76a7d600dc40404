package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ytkit/youtube-data-mcp/internal/registry"
)

// Server wraps the MCP server with the tool registry and dispatcher.
type Server struct {
	mcpServer  *mcp.Server
	dispatcher *Dispatcher
	logger     *slog.Logger
	transport  string
	port       int
}

// NewServer creates an MCP server exposing every tool in the registry.
// Tool routing goes through the dispatcher so that all error translation
// happens in one place.
func NewServer(logger *slog.Logger, reg *registry.Registry, transport string, port int) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "youtube-data-mcp",
		Version: "0.1.0",
	}, nil)

	s := &Server{
		mcpServer:  mcpServer,
		dispatcher: NewDispatcher(reg),
		logger:     logger,
		transport:  transport,
		port:       port,
	}

	for _, def := range reg.List() {
		s.registerTool(def)
	}

	return s
}

// registerTool registers one registry definition as a raw MCP tool handler
// feeding the dispatcher.
func (s *Server) registerTool(def *registry.Definition) {
	name := def.Name
	s.mcpServer.AddTool(&mcp.Tool{
		Name:        name,
		Description: def.Description,
		InputSchema: def.InputSchema,
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := registry.Args{}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return errorResult("invalid arguments for %s: %v", name, err), nil
			}
		}

		result := s.dispatcher.Dispatch(ctx, name, args)
		if result.IsError {
			s.logger.Warn("tool call failed", "tool", name)
		}
		return result, nil
	})
}

// Run starts the MCP server with the configured transport.
// Use TRANSPORT=stdio (default) for local MCP clients or TRANSPORT=http
// for hosted deployments.
func (s *Server) Run(ctx context.Context) error {
	switch s.transport {
	case "http":
		return s.runHTTP(ctx)
	default:
		return s.runStdio(ctx)
	}
}

// runStdio runs the MCP server on the stdio transport (for local MCP clients).
func (s *Server) runStdio(ctx context.Context) error {
	s.logger.Info("starting MCP server", "transport", "stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// runHTTP runs the MCP server as an HTTP server using the Streamable HTTP
// transport.
func (s *Server) runHTTP(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting MCP server", "transport", "streamable-http", "addr", addr)

	streamHandler := mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return s.mcpServer
	}, &mcp.StreamableHTTPOptions{
		Logger: s.logger,
	})

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	})

	mux.Handle("/mcp", streamHandler)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		if err := httpServer.Shutdown(context.Background()); err != nil {
			s.logger.Error("failed to shut down HTTP server", "error", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
