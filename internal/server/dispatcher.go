package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ytkit/youtube-data-mcp/internal/registry"
)

// dispatchTimeout bounds one tool call end to end, upstream I/O included.
const dispatchTimeout = 30 * time.Second

// Dispatcher routes an incoming tool name and argument bag to its registered
// operation and wraps the outcome in the MCP response envelope. It is
// stateless across calls; an operation failure is fatal to the one call,
// never to the process.
type Dispatcher struct {
	registry *registry.Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(reg *registry.Registry) *Dispatcher {
	return &Dispatcher{registry: reg}
}

// Dispatch resolves and invokes one tool call. Errors — unknown tool,
// invalid arguments, upstream failure — become error-kind results carrying
// only the message text; they never propagate past this boundary.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args registry.Args) *mcp.CallToolResult {
	def, err := d.registry.Resolve(name)
	if err != nil {
		return errorResult("%v", err)
	}

	if err := validateArgs(def.InputSchema, args); err != nil {
		return errorResult("invalid arguments for %s: %v", name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	result, err := def.Handler(ctx, args)
	if err != nil {
		return errorResult("%s failed: %v", name, err)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return errorResult("%s failed: could not serialize result: %v", name, err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(payload)},
		},
	}
}

// validateArgs checks the argument bag against the declared schema:
// required fields must be present, enum-constrained fields must hold one of
// the allowed values. Type coercion stays loose (JSON numbers arrive as
// float64); the operation applies its own defaults.
func validateArgs(schema *jsonschema.Schema, args registry.Args) error {
	if schema == nil {
		return nil
	}
	for _, field := range schema.Required {
		v, ok := args[field]
		if !ok || v == "" {
			return fmt.Errorf("missing required argument %q", field)
		}
	}
	for field, prop := range schema.Properties {
		v, ok := args[field]
		if !ok || len(prop.Enum) == 0 {
			continue
		}
		allowed := false
		for _, e := range prop.Enum {
			if v == e {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("argument %q must be one of %v", field, prop.Enum)
		}
	}
	return nil
}

// errorResult builds an error-kind tool result carrying only the message.
func errorResult(format string, a ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, a...)},
		},
	}
}
