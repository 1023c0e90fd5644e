// Package server exposes the tool registry over the MCP transports:
// stdio for local embedding, SSE for remote deployment.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/travelwise/amadeus-mcp/log"
	"github.com/travelwise/amadeus-mcp/tools"
)

const (
	serverName    = "travelwise-amadeus"
	serverVersion = "0.2.0"

	shutdownGrace = 5 * time.Second
)

// Server wraps the tool registry and an MCP server instance
type Server struct {
	registry  *tools.Registry
	mcpServer *server.MCPServer
}

// New creates an MCP server with all registry tools attached
func New(registry *tools.Registry) *Server {
	s := &Server{
		registry:  registry,
		mcpServer: server.NewMCPServer(serverName, serverVersion, server.WithToolCapabilities(false)),
	}
	registry.Attach(s.mcpServer)
	return s
}

// ServeStdio runs the server on stdin/stdout until the client disconnects
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE runs the server on an HTTP listener with an SSE stream at /sse
// and the message endpoint at /message. It blocks until the listener
// fails or ctx is canceled, then drains connections before returning.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Infof(ctx, "MCP server listening (SSE) on %s", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		log.Infof(ctx, "shutdown signal received, stopping server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
