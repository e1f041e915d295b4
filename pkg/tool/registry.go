package tool

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
)

// Registry holds the closed set of tool definitions. Registration happens
// exactly once at startup; after that the registry is read-only and safe for
// unsynchronized concurrent reads by many simultaneous calls.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]*Definition
	schemas map[string]*gojsonschema.Schema
	logger  zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		tools:   make(map[string]*Definition),
		schemas: make(map[string]*gojsonschema.Schema),
		logger:  logger,
	}
}

// Register adds a tool definition. Registering a name twice is a startup-time
// configuration error, not a runtime condition.
func (r *Registry) Register(def Definition) error {
	if err := validateDefinition(def); err != nil {
		return fmt.Errorf("invalid tool definition: %w", err)
	}

	schema, err := compileSchema(def)
	if err != nil {
		return fmt.Errorf("failed to compile schema for %s: %w", def.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("tool already registered: %s", def.Name)
	}

	r.tools[def.Name] = &def
	r.schemas[def.Name] = schema

	r.logger.Info().Str("tool", def.Name).Msg("Tool registered")

	return nil
}

// Resolve looks up a tool by exact name. Unknown names return ok=false.
func (r *Registry) Resolve(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.tools[name]
	return def, ok
}

// Contracts returns all registered definitions sorted by name, for the
// discovery surface.
func (r *Registry) Contracts() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*Definition, 0, len(r.tools))
	for _, def := range r.tools {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

	return defs
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

func (r *Registry) schema(name string) *gojsonschema.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.schemas[name]
}

func validateDefinition(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	if def.Description == "" {
		return fmt.Errorf("tool description cannot be empty")
	}
	if def.Handler == nil {
		return fmt.Errorf("tool handler cannot be nil")
	}

	seen := make(map[string]bool, len(def.Parameters))
	for _, param := range def.Parameters {
		if param.Name == "" {
			return fmt.Errorf("parameter name cannot be empty")
		}
		if seen[param.Name] {
			return fmt.Errorf("duplicate parameter %s", param.Name)
		}
		seen[param.Name] = true

		switch param.Type {
		case TypeString, TypeInteger, TypeNumber, TypeBoolean:
		default:
			return fmt.Errorf("invalid parameter type %q for %s", param.Type, param.Name)
		}
	}

	return nil
}

// compileSchema builds a JSON Schema from the declared parameters. The schema
// is validated against the coerced argument set, so unknown caller-supplied
// extras never reach it.
func compileSchema(def Definition) (*gojsonschema.Schema, error) {
	properties := make(map[string]interface{}, len(def.Parameters))
	required := []string{}

	for _, param := range def.Parameters {
		paramSchema := map[string]interface{}{
			"type":        string(param.Type),
			"description": param.Description,
		}
		if param.Default != nil {
			paramSchema["default"] = param.Default
		}
		properties[param.Name] = paramSchema

		if param.Required {
			required = append(required, param.Name)
		}
	}

	schemaMap := map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           properties,
	}
	if len(required) > 0 {
		schemaMap["required"] = required
	}

	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(schemaMap))
}
