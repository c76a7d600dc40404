// Package registry holds the static tool table: one definition per
// {service}_{operation} tool name, built once at startup and read-only
// thereafter.
package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// ErrUnknownTool indicates a tool name with no registry entry.
var ErrUnknownTool = errors.New("unknown tool")

// Args is the raw argument bag of one tool invocation.
type Args map[string]any

// Operation executes one tool invocation and returns its result payload.
type Operation func(ctx context.Context, args Args) (any, error)

// Definition describes one registered tool: its name, documentation,
// accepted arguments, and the operation behind it.
type Definition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Handler     Operation
}

// Registry is the immutable tool table.
type Registry struct {
	order  []string
	byName map[string]*Definition
}

// NewStatic indexes the given definitions, preserving their order for List.
func NewStatic(defs []*Definition) *Registry {
	r := &Registry{byName: make(map[string]*Definition, len(defs))}
	for _, def := range defs {
		r.order = append(r.order, def.Name)
		r.byName[def.Name] = def
	}
	return r
}

// List returns all definitions in registration order.
func (r *Registry) List() []*Definition {
	defs := make([]*Definition, len(r.order))
	for i, name := range r.order {
		defs[i] = r.byName[name]
	}
	return defs
}

// Resolve looks up a definition by tool name.
func (r *Registry) Resolve(name string) (*Definition, error) {
	def, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return def, nil
}

// String extracts a string argument, reporting whether it was present.
func (a Args) String(key string) (string, bool) {
	v, ok := a[key].(string)
	return v, ok
}

// StringOr extracts a string argument with a default.
func (a Args) StringOr(key, def string) string {
	if v, ok := a[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Int64Or extracts an integer argument with a default. JSON numbers arrive
// as float64; integers that survived unmarshalling as other numeric types
// are accepted too.
func (a Args) Int64Or(key string, def int64) int64 {
	switch v := a[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return def
	}
}

// BoolOr extracts a boolean argument with a default.
func (a Args) BoolOr(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}
