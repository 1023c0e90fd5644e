package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/travelwise/amadeus-mcp/log"
)

// Failure is the structured error half of the result envelope
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Registry manages the registration and dispatch of tools
type Registry struct {
	tools map[string]Tool
	names []string
}

// NewRegistry creates a registry holding the given tools
func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range ts {
		r.Register(t)
	}
	return r
}

// Register adds a tool to the registry
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.names = append(r.names, t.Name())
	}
	r.tools[t.Name()] = t
}

// Names returns the registered tool names in registration order
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Dispatch looks up a tool by exact name and executes it. The outcome is
// always an MCP call result: success carries the serialized payload,
// any failure carries the {kind, message} envelope. No error ever
// escapes to the transport unconverted.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]interface{}) *mcp.CallToolResult {
	ctx = log.WithRequestID(ctx, log.NewRequestID())

	tool, ok := r.tools[name]
	if !ok {
		log.Warnf(ctx, "unknown tool requested: %s", name)
		return failureResult(&Error{Kind: KindUnknownTool, Message: "unknown tool: " + name})
	}

	log.Infof(ctx, "dispatching %s", name)

	payload, terr := tool.Execute(ctx, args)
	if terr != nil {
		log.Warnf(ctx, "%s failed: %s", name, terr.Error())
		return failureResult(terr)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Errorf(ctx, "%s result serialization failed: %v", name, err)
		return failureResult(&Error{Kind: KindProvider, Message: "failed to serialize result"})
	}

	return mcp.NewToolResultText(string(body))
}

// Attach registers every tool's definition and handler on the MCP server
func (r *Registry) Attach(s *server.MCPServer) {
	for _, name := range r.names {
		tool := r.tools[name]
		s.AddTool(tool.Definition(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return r.Dispatch(ctx, tool.Name(), request.GetArguments()), nil
		})
	}
}

func failureResult(terr *Error) *mcp.CallToolResult {
	body, err := json.Marshal(Failure{Kind: terr.Kind, Message: terr.Message})
	if err != nil {
		return mcp.NewToolResultError(terr.Message)
	}
	return mcp.NewToolResultError(string(body))
}
