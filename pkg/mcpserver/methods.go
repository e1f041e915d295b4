package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harun/careerintel/internal/observability"
	"github.com/harun/careerintel/pkg/tool"
)

// route dispatches one JSON-RPC message and returns its response, or nil for
// notifications. Every method is gated on the bearer token: discovery and
// lifecycle methods check it directly, tools/call hands it to the dispatcher
// so authentication happens before tool resolution.
func (s *Server) route(ctx context.Context, token string, req *Request) *Response {
	switch req.Method {
	case "initialize":
		if resp := s.requireAuth(token, req); resp != nil {
			return resp
		}
		return s.handleInitialize(req)

	case "notifications/initialized":
		return nil

	case "ping":
		if resp := s.requireAuth(token, req); resp != nil {
			return resp
		}
		return resultResponse(req.ID, map[string]interface{}{})

	case "tools/list":
		if resp := s.requireAuth(token, req); resp != nil {
			return resp
		}
		return s.handleToolsList(req)

	case "tools/call":
		return s.handleToolsCall(ctx, token, req)

	default:
		if req.IsNotification() {
			return nil
		}
		return errorResponse(req.ID, MethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

func (s *Server) requireAuth(token string, req *Request) *Response {
	if _, ok := s.validator.Validate(token); ok {
		return nil
	}

	observability.RecordAuthFailure()
	s.logger.Warn().Str("method", req.Method).Msg("Authentication failed")
	return errorResponse(req.ID, AuthRequired, "invalid or missing bearer token")
}

func (s *Server) handleInitialize(req *Request) *Response {
	return resultResponse(req.ID, InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities: Capabilities{
			Tools: map[string]interface{}{
				"listChanged": false,
			},
		},
		ServerInfo: ServerInfo{
			Name:    serverName,
			Version: serverVersion,
		},
	})
}

// handleToolsList exposes the discovery surface: every registered contract
// with its description, use_when guidance, side-effect annotation, and
// parameter schema.
func (s *Server) handleToolsList(req *Request) *Response {
	contracts := s.registry.Contracts()

	tools := make([]Tool, 0, len(contracts))
	for _, def := range contracts {
		tools = append(tools, Tool{
			Name:        def.Name,
			Description: describeTool(def),
			InputSchema: schemaFor(def),
		})
	}

	return resultResponse(req.ID, ToolsListResult{Tools: tools})
}

func (s *Server) handleToolsCall(ctx context.Context, token string, req *Request) *Response {
	var params ToolsCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return invalidParamsError(req.ID, err)
	}

	if !s.limiter.Acquire() {
		return errorResponse(req.ID, ServerBusy, "too many concurrent requests")
	}
	observability.SetInFlight(s.limiter.InFlight())
	defer func() {
		s.limiter.Release()
		observability.SetInFlight(s.limiter.InFlight())
	}()

	start := time.Now()
	result := s.dispatcher.Dispatch(ctx, tool.Call{
		Token:     token,
		Name:      params.Name,
		Arguments: params.Arguments,
	})
	observability.RecordToolCall(params.Name, time.Since(start), string(result.ErrorCode))

	if !result.OK() {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   rpcErrorFor(result),
		}
	}

	return resultResponse(req.ID, ToolsCallResult{
		Content: []Content{{Type: "text", Text: result.Content}},
	})
}
