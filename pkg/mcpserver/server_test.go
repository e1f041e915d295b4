package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harun/careerintel/pkg/auth"
	"github.com/harun/careerintel/pkg/tool"
)

const testToken = "secret123"

type rpcEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	registry := tool.NewRegistry(zerolog.Nop())
	require.NoError(t, registry.Register(tool.Definition{
		Name:        "whoami",
		Description: "Return the operator identifier",
		Handler: func(ctx context.Context, params map[string]interface{}) (string, error) {
			return "operator-42", nil
		},
	}))
	require.NoError(t, registry.Register(tool.Definition{
		Name:        "greet",
		Description: "Greet someone by name",
		UseWhen:     "When you want a greeting",
		Parameters: []tool.Parameter{
			{Name: "name", Type: tool.TypeString, Description: "Who to greet", Required: true},
			{Name: "greeting", Type: tool.TypeString, Description: "Greeting word", Default: "hello"},
		},
		Handler: func(ctx context.Context, params map[string]interface{}) (string, error) {
			return fmt.Sprintf("%s %s", params["greeting"], params["name"]), nil
		},
	}))

	validator := auth.NewValidator(testToken, "careerintel-client")
	dispatcher, err := tool.NewDispatcher(validator, registry, zerolog.Nop())
	require.NoError(t, err)

	srv, err := NewServer(Config{
		Host:       "127.0.0.1",
		Port:       8086,
		Registry:   registry,
		Dispatcher: dispatcher,
		Validator:  validator,
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return srv, ts
}

func postRPC(t *testing.T, url, token string, payload interface{}) (int, *rpcEnvelope) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url+"/mcp", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusAccepted {
		return resp.StatusCode, nil
	}

	var envelope rpcEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, &envelope
}

func callPayload(id interface{}, name string, args map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params":  map[string]interface{}{"name": name, "arguments": args},
	}
}

func decodeCallResult(t *testing.T, envelope *rpcEnvelope) ToolsCallResult {
	t.Helper()

	var result ToolsCallResult
	require.NoError(t, json.Unmarshal(envelope.Result, &result))
	return result
}

func TestServer_ToolsCall_Success(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken, callPayload(1, "whoami", nil))

	require.Equal(t, http.StatusOK, status)
	require.Nil(t, envelope.Error)

	result := decodeCallResult(t, envelope)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.Equal(t, "operator-42", result.Content[0].Text)
}

func TestServer_ToolsCall_DefaultsApplied(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken,
		callPayload(2, "greet", map[string]interface{}{"name": "world"}))

	require.Equal(t, http.StatusOK, status)
	require.Nil(t, envelope.Error)
	assert.Equal(t, "hello world", decodeCallResult(t, envelope).Content[0].Text)
}

func TestServer_MissingBearer(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, "", callPayload(3, "whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, AuthRequired, envelope.Error.Code)
}

func TestServer_WrongToken_UnknownTool_AuthWins(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, "wrong",
		callPayload(4, "nonexistent_tool", map[string]interface{}{"x": 1}))

	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, AuthRequired, envelope.Error.Code)
	// The auth failure must not reveal whether the tool exists.
	assert.NotContains(t, envelope.Error.Message, "nonexistent_tool")
}

func TestServer_UnknownTool(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken, callPayload(5, "nonexistent_tool", nil))

	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, MethodNotFound, envelope.Error.Code)

	data, ok := envelope.Error.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", data["errorCode"])
}

func TestServer_MissingRequiredParam(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken,
		callPayload(6, "greet", map[string]interface{}{}))

	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, InvalidParams, envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "name")
}

func TestServer_ToolsList(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken, map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      7,
		"method":  "tools/list",
	})

	require.Equal(t, http.StatusOK, status)
	require.Nil(t, envelope.Error)

	var result ToolsListResult
	require.NoError(t, json.Unmarshal(envelope.Result, &result))
	require.Len(t, result.Tools, 2)

	// Sorted by name: greet, whoami.
	greet := result.Tools[0]
	assert.Equal(t, "greet", greet.Name)
	assert.Contains(t, greet.Description, "use_when")

	props, ok := greet.InputSchema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "greeting")
	assert.Equal(t, []interface{}{"name"}, greet.InputSchema["required"])

	whoami := result.Tools[1]
	assert.Equal(t, "whoami", whoami.Name)
	assert.Equal(t, "Return the operator identifier", whoami.Description)
}

func TestServer_ToolsList_RequiresAuth(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, "wrong", map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      8,
		"method":  "tools/list",
	})

	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, AuthRequired, envelope.Error.Code)
}

func TestServer_Initialize(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken, map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      9,
		"method":  "initialize",
		"params": map[string]interface{}{
			"protocolVersion": protocolVersion,
			"clientInfo":      map[string]interface{}{"name": "test", "version": "1.0"},
		},
	})

	require.Equal(t, http.StatusOK, status)
	require.Nil(t, envelope.Error)

	var result InitializeResult
	require.NoError(t, json.Unmarshal(envelope.Result, &result))
	assert.Equal(t, protocolVersion, result.ProtocolVersion)
	assert.Equal(t, serverName, result.ServerInfo.Name)
}

func TestServer_InitializedNotification(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken, map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "notifications/initialized",
	})

	assert.Equal(t, http.StatusAccepted, status)
	assert.Nil(t, envelope)
}

func TestServer_Ping(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken, map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      10,
		"method":  "ping",
	})

	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, envelope.Error)
}

func TestServer_UnknownMethod(t *testing.T) {
	_, ts := newTestServer(t)

	status, envelope := postRPC(t, ts.URL, testToken, map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      11,
		"method":  "resources/list",
	})

	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, MethodNotFound, envelope.Error.Code)
}

func TestServer_ParseError(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/mcp", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/mcp")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_Healthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewServer_RequiresCollaborators(t *testing.T) {
	registry := tool.NewRegistry(zerolog.Nop())
	validator := auth.NewValidator(testToken, "careerintel-client")
	dispatcher, err := tool.NewDispatcher(validator, registry, zerolog.Nop())
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "invalid port", cfg: Config{Registry: registry, Dispatcher: dispatcher, Validator: validator}},
		{name: "missing registry", cfg: Config{Port: 8086, Dispatcher: dispatcher, Validator: validator}},
		{name: "missing dispatcher", cfg: Config{Port: 8086, Registry: registry, Validator: validator}},
		{name: "missing validator", cfg: Config{Port: 8086, Registry: registry, Dispatcher: dispatcher}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServer(tt.cfg)
			assert.Error(t, err)
		})
	}
}
