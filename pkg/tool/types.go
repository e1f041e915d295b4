package tool

import "context"

// ParamType enumerates the declared parameter types. Validation is driven by
// this tagged enumeration rather than runtime type inspection.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
)

// Parameter declares a single tool parameter.
type Parameter struct {
	Name        string      `json:"name"`
	Type        ParamType   `json:"type"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Default     interface{} `json:"default,omitempty"`
}

// Handler is the function signature for tool execution. Handlers receive the
// validated and defaulted argument set and return a text payload.
type Handler func(ctx context.Context, params map[string]interface{}) (string, error)

// Definition declares a tool's contract: its name, discovery metadata, and
// parameter schema. Immutable once registered.
type Definition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	UseWhen     string      `json:"use_when,omitempty"`
	SideEffects string      `json:"side_effects,omitempty"`
	Parameters  []Parameter `json:"parameters"`
	Handler     Handler     `json:"-"`
}

// Call is a single inbound invocation: the bearer token presented by the
// caller, the tool name, and the raw argument mapping.
type Call struct {
	Token     string
	Name      string
	Arguments map[string]interface{}
}

// ErrorCode classifies terminal dispatch failures.
type ErrorCode string

const (
	ErrAuthFailure   ErrorCode = "AUTH_FAILURE"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrInvalidParams ErrorCode = "INVALID_PARAMS"
	ErrInternal      ErrorCode = "INTERNAL_ERROR"
)

// Result is the outcome of a dispatched call: either a text payload or a
// structured failure.
type Result struct {
	Content   string    `json:"content,omitempty"`
	ErrorCode ErrorCode `json:"errorCode,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// OK reports whether the result carries a success payload.
func (r Result) OK() bool {
	return r.ErrorCode == ""
}
