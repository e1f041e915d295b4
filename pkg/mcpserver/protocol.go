package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/harun/careerintel/pkg/tool"
)

const protocolVersion = "2024-11-05"

// Request represents a JSON-RPC 2.0 request. MCP clients send string or
// numeric ids; notifications carry none.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request expects no response.
func (r *Request) IsNotification() bool {
	return r.ID == nil
}

// Response represents a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error object.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}

// JSON-RPC error codes, plus server-specific codes in the -32000 range.
const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
	ServerBusy     = -32000
	AuthRequired   = -32001
)

// Tool is the MCP discovery representation of a registered tool.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolsListResult is the tools/list response payload.
type ToolsListResult struct {
	Tools []Tool `json:"tools"`
}

// ToolsCallParams are the tools/call request parameters.
type ToolsCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// Content is a single MCP content block.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolsCallResult is the tools/call success payload.
type ToolsCallResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// InitializeResult is the initialize response payload.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}

// Capabilities advertises what this server supports.
type Capabilities struct {
	Tools map[string]interface{} `json:"tools,omitempty"`
}

// ServerInfo identifies the server to clients.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// richDescription is the discovery metadata embedded in a tool description:
// the human description plus use_when guidance and the declared side-effect
// annotation.
type richDescription struct {
	Description string  `json:"description"`
	UseWhen     string  `json:"use_when"`
	SideEffects *string `json:"side_effects"`
}

// describeTool renders the discovery description for a tool. Tools carrying
// use_when guidance expose the full rich description as JSON; others expose
// the plain description string.
func describeTool(def *tool.Definition) string {
	if def.UseWhen == "" {
		return def.Description
	}

	rich := richDescription{
		Description: def.Description,
		UseWhen:     def.UseWhen,
	}
	if def.SideEffects != "" {
		rich.SideEffects = &def.SideEffects
	}

	data, err := json.Marshal(rich)
	if err != nil {
		return def.Description
	}
	return string(data)
}

// schemaFor builds the client-facing JSON Schema for a tool's parameters.
// additionalProperties is left open: unknown extras are ignored, not rejected.
func schemaFor(def *tool.Definition) map[string]interface{} {
	properties := make(map[string]interface{}, len(def.Parameters))
	required := []string{}

	for _, param := range def.Parameters {
		prop := map[string]interface{}{
			"type":        string(param.Type),
			"description": param.Description,
		}
		if param.Default != nil {
			prop["default"] = param.Default
		}
		properties[param.Name] = prop

		if param.Required {
			required = append(required, param.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// rpcErrorFor maps a dispatch failure to its JSON-RPC error, carrying the
// taxonomy code in error.data.errorCode.
func rpcErrorFor(result tool.Result) *RPCError {
	code := InternalError
	switch result.ErrorCode {
	case tool.ErrAuthFailure:
		code = AuthRequired
	case tool.ErrNotFound:
		code = MethodNotFound
	case tool.ErrInvalidParams:
		code = InvalidParams
	}

	return &RPCError{
		Code:    code,
		Message: result.Message,
		Data: map[string]interface{}{
			"errorCode": string(result.ErrorCode),
		},
	}
}

func errorResponse(id interface{}, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
		},
	}
}

func resultResponse(id interface{}, result interface{}) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

func parseRequest(data []byte) (*Request, *RPCError) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, &RPCError{Code: ParseError, Message: "Parse error", Data: err.Error()}
	}

	if req.Method == "" {
		return nil, &RPCError{Code: InvalidRequest, Message: "Invalid request: missing method field"}
	}
	if req.JSONRPC == "" {
		req.JSONRPC = "2.0"
	}

	return &req, nil
}

func invalidParamsError(id interface{}, err error) *Response {
	return errorResponse(id, InvalidParams, fmt.Sprintf("invalid params: %v", err))
}
